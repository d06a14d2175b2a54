package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/frankyi-gh/aplcheck/internal/core"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	var seen string
	h := CorrelationIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = core.CorrelationID(r.Context())
	}))

	// no incoming id: one is generated and echoed
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/check", nil))
	if seen == "" {
		t.Error("expected a generated correlation id in the request context")
	}
	if got := rec.Header().Get(CorrelationIDHeader); got != seen {
		t.Errorf("got header '%s', want '%s'", got, seen)
	}

	// incoming id is kept
	req := httptest.NewRequest("GET", "/v1/check", nil)
	req.Header.Set(CorrelationIDHeader, "client-chosen")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "client-chosen" {
		t.Errorf("got correlation id '%s', want 'client-chosen'", seen)
	}
	if got := rec.Header().Get(CorrelationIDHeader); got != "client-chosen" {
		t.Errorf("got header '%s', want 'client-chosen'", got)
	}
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = orig }()

	h := LoggingMiddleware("/healthz")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/v1/check", nil))

	out := buf.String()
	for _, want := range []string{"request.completed", `"method":"POST"`, `"path":"/v1/check"`, `"status":418`, `"bytes":15`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %s missing %s", out, want)
		}
	}
}

func TestLoggingMiddleware_QuietPath(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = orig }()

	h := LoggingMiddleware("/healthz")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fail") != "" {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	// healthy probes stay out of the logs
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/healthz", nil))
	if buf.Len() != 0 {
		t.Errorf("expected no log output for a healthy probe, got %s", buf.String())
	}

	// failing probes are still logged
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/healthz?fail=1", nil))
	if !strings.Contains(buf.String(), `"status":500`) {
		t.Errorf("expected a log entry for a failing probe, got %s", buf.String())
	}
}

func TestRecoverMiddleware(t *testing.T) {
	h := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler exploded")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/check", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("got status %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Errorf("got body %s, want an internal server error message", rec.Body.String())
	}
}
