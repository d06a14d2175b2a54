package middleware

import (
	"net/http"

	"github.com/rs/xid"

	"github.com/frankyi-gh/aplcheck/internal/core"
)

// CorrelationIDHeader carries the request correlation id. Clients may send
// their own id; requests without one get a generated xid.
const CorrelationIDHeader = "X-Correlation-ID"

// CorrelationIDMiddleware stamps every request with a correlation id, echoes
// it in the response header and stores it in the request context for the
// logger, presenter and audit trail.
func CorrelationIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(CorrelationIDHeader)
		if id == "" {
			id = xid.New().String()
		}
		w.Header().Set(CorrelationIDHeader, id)

		ctx := core.WithCorrelationID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
