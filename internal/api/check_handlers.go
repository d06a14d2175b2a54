package api

import (
	"encoding/json"
	"net/http"

	"github.com/frankyi-gh/aplcheck/internal/api/presenter"
	"github.com/frankyi-gh/aplcheck/internal/core"
)

// CheckPayload is the request body for check and explain requests.
type CheckPayload struct {
	// Events is the chronological event stream to evaluate.
	Events []core.Event `json:"events"`

	// PlayerID identifies the actor whose casts are evaluated.
	PlayerID int `json:"playerID"`
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload CheckPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		presenter.Error(w, r, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	run, err := s.checkService.RunCheck(ctx, payload.Events, payload.PlayerID)
	if err != nil {
		presenter.Err(w, r, err, "running check")
		return
	}

	presenter.JSON(w, r, run, http.StatusOK)
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload CheckPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		presenter.Error(w, r, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	trace, err := s.checkService.Explain(ctx, payload.Events, payload.PlayerID)
	if err != nil {
		presenter.Err(w, r, err, "explaining check")
		return
	}

	presenter.JSON(w, r, trace, http.StatusOK)
}
