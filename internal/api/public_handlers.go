package api

import (
	"net/http"

	"github.com/frankyi-gh/aplcheck/internal/api/presenter"
	"github.com/frankyi-gh/aplcheck/internal/buildinfo"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	presenter.JSON(w, r, map[string]string{"status": "ok"}, http.StatusOK)
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	presenter.JSON(w, r, buildinfo.GetBuildInfo(), http.StatusOK)
}
