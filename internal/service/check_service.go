package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"github.com/frankyi-gh/aplcheck/internal/config"
	"github.com/frankyi-gh/aplcheck/internal/core"
	"github.com/frankyi-gh/aplcheck/internal/engine"
)

// CheckService runs APL checks for the HTTP API, persists the resulting
// runs and writes audit entries.
type CheckService struct {
	manager *engine.Manager
	store   core.RunStore
	auditor core.Auditor
}

func NewCheckService(manager *engine.Manager, store core.RunStore, auditor core.Auditor) *CheckService {
	return &CheckService{
		manager: manager,
		store:   store,
		auditor: auditor,
	}
}

// RunCheck evaluates the given event stream against the active APL and
// stores the result as a new run. An empty stream is allowed and yields an
// empty result, since a log with no governed attempts is not an error.
func (s *CheckService) RunCheck(ctx context.Context, events []core.Event, playerID int) (core.CheckRun, error) {
	logger := log.Ctx(ctx)
	reqID := core.CorrelationID(ctx)

	auditEntry := core.AuditEntry{
		ID:       reqID,
		Time:     time.Now(),
		Action:   "check.run",
		PlayerID: playerID,
		Events:   len(events),
	}
	defer func() {
		if err := s.auditor.Log(auditEntry); err != nil {
			logger.Error().Err(err).Msg("failed to write audit log entry for check run")
		}
	}()

	if playerID == 0 {
		err := httpError(http.StatusBadRequest, fmt.Errorf("playerID is required"))
		auditEntry.Error = err.Error()
		return core.CheckRun{}, err
	}

	result := s.manager.Checker().Evaluate(events, playerID)

	run := core.CheckRun{
		ID:        xid.New().String(),
		CreatedAt: time.Now().UTC(),
		PlayerID:  playerID,
		Events:    len(events),
		Result:    result,
	}

	if err := s.store.Save(ctx, run); err != nil {
		auditEntry.Error = err.Error()
		return core.CheckRun{}, httpError(http.StatusInternalServerError, fmt.Errorf("storing check run: %w", err))
	}

	auditEntry.RunID = run.ID
	auditEntry.Successes = len(result.Successes)
	auditEntry.Violations = len(result.Violations)

	logger.Info().
		Str("run_id", run.ID).
		Int("player_id", playerID).
		Int("events", len(events)).
		Int("successes", len(result.Successes)).
		Int("violations", len(result.Violations)).
		Msg("check.completed")

	return run, nil
}

// Explain evaluates the event stream in trace mode. Traces are not stored.
func (s *CheckService) Explain(ctx context.Context, events []core.Event, playerID int) (core.CheckTrace, error) {
	if playerID == 0 {
		return core.CheckTrace{}, httpError(http.StatusBadRequest, fmt.Errorf("playerID is required"))
	}
	return s.manager.Checker().EvaluateTrace(events, playerID), nil
}

func (s *CheckService) GetRun(ctx context.Context, id string) (core.CheckRun, error) {
	run, err := s.store.Get(ctx, id)
	if errors.Is(err, core.ErrRunNotFound) {
		return core.CheckRun{}, httpError(http.StatusNotFound, err)
	}
	if err != nil {
		return core.CheckRun{}, httpError(http.StatusInternalServerError, err)
	}
	return run, nil
}

func (s *CheckService) ListRuns(ctx context.Context, limit int) ([]core.CheckRun, error) {
	runs, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, httpError(http.StatusInternalServerError, err)
	}
	return runs, nil
}

// UpdateAPL validates the declared APL and swaps it in for all future
// checks. In-flight evaluations keep the checker they started with.
func (s *CheckService) UpdateAPL(ctx context.Context, cfg config.APLConfig) error {
	logger := log.Ctx(ctx)
	reqID := core.CorrelationID(ctx)

	apl, err := cfg.Build()
	if err != nil {
		return httpError(http.StatusBadRequest, fmt.Errorf("building apl: %w", err))
	}

	s.manager.Update(apl)

	if auditErr := s.auditor.Log(core.AuditEntry{
		ID:     reqID,
		Time:   time.Now(),
		Action: "apl.update",
		Metadata: map[string]any{
			"rules":      len(apl.Rules),
			"conditions": len(apl.Conditions),
		},
	}); auditErr != nil {
		logger.Error().Err(auditErr).Msg("failed to write audit log entry for apl update")
	}

	logger.Info().
		Int("rules", len(apl.Rules)).
		Int("conditions", len(apl.Conditions)).
		Msg("apl.updated")

	return nil
}
