package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/frankyi-gh/aplcheck/internal/api/presenter"
	"github.com/frankyi-gh/aplcheck/internal/config"
)

const defaultRunListLimit = 50

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultRunListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			presenter.Error(w, r, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	runs, err := s.checkService.ListRuns(ctx, limit)
	if err != nil {
		presenter.Err(w, r, err, "listing runs")
		return
	}

	presenter.JSON(w, r, runs, http.StatusOK)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.PathValue("id")
	if id == "" {
		presenter.Error(w, r, "missing run id", http.StatusBadRequest)
		return
	}

	run, err := s.checkService.GetRun(ctx, id)
	if err != nil {
		presenter.Err(w, r, err, "fetching run")
		return
	}

	presenter.JSON(w, r, run, http.StatusOK)
}

// handleUpdateAPL accepts the APL definition in its authored YAML form and
// hot-swaps it after validation.
func (s *Server) handleUpdateAPL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		presenter.Error(w, r, "reading request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	var cfg config.Config
	if err := yaml.Unmarshal(body, &cfg); err != nil {
		presenter.Error(w, r, "parsing apl definition: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.checkService.UpdateAPL(ctx, cfg.APL); err != nil {
		presenter.Err(w, r, err, "updating apl")
		return
	}

	presenter.JSON(w, r, map[string]string{"status": "updated"}, http.StatusOK)
}
