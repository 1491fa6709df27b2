package middleware

import (
	"net/http"
	"strings"

	"chrozone/internal/platform/logger"
	pnet "chrozone/internal/platform/net"

	"github.com/google/uuid"
)

// HeaderRequestID carries the request id in and out
const HeaderRequestID = "X-Request-ID"

// newID is a seam for tests
var newID = uuid.NewString

// RequestID propagates an inbound X-Request-ID or mints a uuid, stores it on the
// context for both chi and the logger, and mirrors it on the response
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(HeaderRequestID))
			if id == "" || len(id) > 128 {
				id = newID()
			}
			ctx := pnet.WithRequest(r.Context(), id)
			ctx = logger.WithRequest(ctx, id)
			w.Header().Set(HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
