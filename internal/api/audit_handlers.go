package api

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/frankyi-gh/aplcheck/internal/api/presenter"
	"github.com/frankyi-gh/aplcheck/internal/core"
)

const defaultAuditListLimit = 50

// handleListAudits serves audit log entries for auditors that support
// reading back (currently the in-memory auditor).
func (s *Server) handleListAudits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.Ctx(ctx)

	reader, ok := s.auditor.(core.AuditReader)
	if !ok {
		presenter.Error(w, r, "configured auditor is not queryable", http.StatusNotImplemented)
		return
	}

	limit := defaultAuditListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			presenter.Error(w, r, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	// filters
	q := r.URL.Query()
	filterAction := q.Get("action")
	filterRunID := q.Get("run_id")
	filterPlayer := q.Get("player_id")

	var entries []core.AuditEntry
	var err error

	if filterAction != "" || filterRunID != "" || filterPlayer != "" {
		entries, err = reader.Find(func(entry core.AuditEntry) bool {
			if filterAction != "" && entry.Action != filterAction {
				return false
			}
			if filterRunID != "" && entry.RunID != filterRunID {
				return false
			}
			if filterPlayer != "" && strconv.Itoa(entry.PlayerID) != filterPlayer {
				return false
			}
			return true
		}, limit)
	} else {
		entries, err = reader.GetRecent(limit)
	}

	if err != nil {
		logger.Error().Err(err).Msg("failed to retrieve audit logs")
		presenter.Error(w, r, "failed to retrieve audit logs", http.StatusInternalServerError)
		return
	}

	presenter.JSON(w, r, entries, http.StatusOK)
}
