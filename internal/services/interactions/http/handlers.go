// Package http exposes the signed interactions webhook
package http

import (
	"encoding/json"
	"io"
	"net/http"

	"chrozone/internal/modkit/httpkit"
	perr "chrozone/internal/platform/errors"
	"chrozone/internal/platform/logger"
	"chrozone/internal/services/interactions/auth"
	"chrozone/internal/services/interactions/domain"
)

// DefaultMaxBody bounds the webhook body read
const DefaultMaxBody = 1 << 20

// Deps are the handler dependencies
type Deps struct {
	Verifier  auth.Verifier
	Responder domain.Responder
	MaxBody   int64
}

type handlers struct {
	deps Deps
}

// Register mounts the webhook at the module root
func Register(r httpkit.Router, d Deps) {
	if d.MaxBody <= 0 {
		d.MaxBody = DefaultMaxBody
	}
	h := &handlers{deps: d}
	r.Handle("/", http.HandlerFunc(h.webhook))
}

func (h *handlers) webhook(w http.ResponseWriter, r *http.Request) {
	log := logger.C(r.Context())

	if err := h.deps.Verifier.Route(r.Method, r.URL.Path); err != nil {
		httpkit.RespondError(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.deps.MaxBody))
	if err != nil {
		log.Warn().Err(err).Msg("webhook body read failed")
		httpkit.RespondError(w, r, perr.Wrap(err, perr.ErrorCodeTransport, "read body"))
		return
	}

	if _, err := h.deps.Verifier.Verify(r.Header, body); err != nil {
		log.Info().Err(err).Msg("webhook rejected")
		httpkit.RespondError(w, r, err)
		return
	}

	in, err := Decode(body)
	if err != nil {
		log.Warn().Err(err).Msg("webhook payload rejected")
		httpkit.RespondError(w, r, err)
		return
	}

	out, err := json.Marshal(h.deps.Responder.Respond(r.Context(), in))
	if err != nil {
		log.Error().Err(err).Msg("response encoding failed")
		httpkit.RespondError(w, r, perr.Wrap(err, perr.ErrorCodeTransport, "encode response"))
		return
	}
	httpkit.RespondRaw(w, http.StatusOK, out)
}
