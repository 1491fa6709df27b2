package httpkit

import (
	"net/http"
	"time"

	"chrozone/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// Timeout bounds each request; 0 disables
	Timeout time.Duration
	// Slow marks access log lines at warn when a request takes at least this long
	Slow time.Duration
	// Origins for CORS; empty allows none
	Origins []string
}

// CommonStack returns the baseline middleware slice applied at the root
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		// freshness + cross-origin
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
	}
	if o.Timeout > 0 {
		stack = append(stack, middleware.Timeout(o.Timeout))
	}
	return stack
}
