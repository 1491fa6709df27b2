// Package middleware holds adapters and in house middlewares
package middleware

import (
	"net/http"
	"time"

	"chrozone/internal/platform/logger"

	"github.com/rs/zerolog"
)

// headerSignature marks a request as a signed webhook delivery in the access log
const headerSignature = "X-Signature-Ed25519"

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow raises the line to warn at or above this duration; 0 disables
	Slow time.Duration
}

// statusWriter records the first status written and the body size
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sw *statusWriter) WriteHeader(code int) {
	if sw.status == 0 {
		sw.status = code
	}
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.status == 0 {
		sw.status = http.StatusOK
	}
	n, err := sw.ResponseWriter.Write(b)
	sw.bytes += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer
func (sw *statusWriter) Unwrap() http.ResponseWriter { return sw.ResponseWriter }

// level picks the line level: server faults at error, slow requests at warn
func level(status int, elapsed, slow time.Duration) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case slow > 0 && elapsed >= slow:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// AccessLogZerolog writes one line per request through the request scoped logger
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(sw, r)

			if sw.status == 0 {
				sw.status = http.StatusOK
			}
			elapsed := time.Since(start)
			logger.C(r.Context()).WithLevel(level(sw.status, elapsed, opt.Slow)).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Int("bytes", sw.bytes).
				Bool("signed", r.Header.Get(headerSignature) != "").
				Str("remote", r.RemoteAddr).
				Dur("elapsed", elapsed).
				Msg("request done")
		})
	}
}
