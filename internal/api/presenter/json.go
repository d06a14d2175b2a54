package presenter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/frankyi-gh/aplcheck/internal/core"
	"github.com/frankyi-gh/aplcheck/internal/service"
)

// ErrorResponse is the wire shape of every error the API returns. The
// correlation id echoes the X-Correlation-ID header so clients can reference
// the server logs.
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id"`
}

// JSON encodes data as the response body with the given status.
func JSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("encoding response body failed")
	}
}

// Error writes an ErrorResponse with the given message and status.
func Error(w http.ResponseWriter, r *http.Request, msg string, status int) {
	JSON(w, r, ErrorResponse{
		Error:         msg,
		CorrelationID: core.CorrelationID(r.Context()),
	}, status)
}

// Err writes err prefixed with short context. The status comes from the
// service.HTTPError in the chain, if any; everything else defaults to 400
// since most evaluation failures are caused by the request.
func Err(w http.ResponseWriter, r *http.Request, err error, short string) {
	status := http.StatusBadRequest
	var httpErr service.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.StatusCode
	}
	Error(w, r, short+": "+err.Error(), status)
}
