package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	perr "chrozone/internal/platform/errors"
	pnet "chrozone/internal/platform/net"
	phttp "chrozone/internal/platform/net/http"
	kit "chrozone/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestRequestID_MintsAndPropagates(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &newID, func() string { return "minted-1" })

	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/discord", nil))
	if seen != "minted-1" || rec.Header().Get(HeaderRequestID) != "minted-1" {
		t.Fatalf("minted id: ctx=%q header=%q", seen, rec.Header().Get(HeaderRequestID))
	}

	req := httptest.NewRequest(http.MethodPost, "/discord", nil)
	req.Header.Set(HeaderRequestID, " upstream-7 ")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "upstream-7" || rec.Header().Get(HeaderRequestID) != "upstream-7" {
		t.Fatalf("inbound id: ctx=%q header=%q", seen, rec.Header().Get(HeaderRequestID))
	}
}

func TestRequestID_DefaultGeneratorIsUUID(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if len(seen) != 36 {
		t.Fatalf("expected uuid, got %q", seen)
	}
}

func TestRecoverJSON_PanicBecomes500Envelope(t *testing.T) {
	h := RequestID()(RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/discord", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Code != perr.ErrorCodePanic || env.RequestID == "" {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestRecoverJSON_PassThrough(t *testing.T) {
	h := RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "fine")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "fine" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestAccessLogZerolog_PassThroughStatusAndBody(t *testing.T) {
	for _, slow := range []time.Duration{0, time.Nanosecond} {
		mw := AccessLogZerolog(AccessLogOptions{Slow: slow})
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, "denied")
		})
		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/discord", nil))
		if rec.Code != http.StatusUnauthorized || rec.Body.String() != "denied" {
			t.Fatalf("slow=%v: got %d %q", slow, rec.Code, rec.Body.String())
		}
	}
}

func TestAccessLog_LevelAndStatusCapture(t *testing.T) {
	cases := []struct {
		status  int
		elapsed time.Duration
		slow    time.Duration
		want    zerolog.Level
	}{
		{http.StatusOK, time.Millisecond, 0, zerolog.InfoLevel},
		{http.StatusUnauthorized, time.Millisecond, time.Second, zerolog.InfoLevel},
		{http.StatusOK, 2 * time.Second, time.Second, zerolog.WarnLevel},
		{http.StatusInternalServerError, 0, 0, zerolog.ErrorLevel},
	}
	for _, c := range cases {
		if got := level(c.status, c.elapsed, c.slow); got != c.want {
			t.Fatalf("level(%d,%v,%v) = %v, want %v", c.status, c.elapsed, c.slow, got, c.want)
		}
	}

	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec}
	_, _ = io.WriteString(sw, "ok")
	sw.WriteHeader(http.StatusTeapot)
	if sw.status != http.StatusOK || sw.bytes != 2 || sw.Unwrap() != rec {
		t.Fatalf("status=%d bytes=%d", sw.status, sw.bytes)
	}
}

func TestNoCache_SetsHeaders(t *testing.T) {
	h := NoCache()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("expected Cache-Control header")
	}
}

func TestCORS_PreflightAllowsSignatureHeaders(t *testing.T) {
	h := CORS(CORSOptions{AllowedOrigins: []string{"*"}})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodOptions, "/discord", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "X-Signature-Ed25519")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("expected CORS allow origin header, got %v", rec.Header())
	}
}

func TestRealIPAndTimeout_Wrap(t *testing.T) {
	var remote string
	h := RealIP()(Timeout(time.Second)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		remote = r.RemoteAddr
	})))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "203.0.113.9")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if remote != "203.0.113.9" {
		t.Fatalf("RemoteAddr = %q", remote)
	}
}
