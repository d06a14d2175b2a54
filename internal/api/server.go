package api

import (
	"net/http"

	"github.com/frankyi-gh/aplcheck/internal/api/middleware"
	"github.com/frankyi-gh/aplcheck/internal/audit"
	"github.com/frankyi-gh/aplcheck/internal/core"
	"github.com/frankyi-gh/aplcheck/internal/engine"
	"github.com/frankyi-gh/aplcheck/internal/service"
)

type Server struct {
	manager      *engine.Manager
	runStore     core.RunStore
	auditor      core.Auditor
	checkService *service.CheckService
}

func NewServer(
	manager *engine.Manager,
	runStore core.RunStore,
	auditor core.Auditor,
) *Server {
	if auditor == nil {
		auditor = audit.NewNoopAuditor()
	}

	svc := service.NewCheckService(manager, runStore, auditor)

	return &Server{
		manager:      manager,
		runStore:     runStore,
		auditor:      auditor,
		checkService: svc,
	}
}

func (s *Server) Routes(signingKey []byte) http.Handler {
	mux := http.NewServeMux()

	// public routes
	mux.HandleFunc("GET "+HealthCheckRoute, s.handleHealth)
	mux.HandleFunc("GET "+AboutRoute, s.handleAbout)

	// check routes
	mux.HandleFunc("POST "+CheckRoute, s.handleCheck)
	mux.HandleFunc("POST "+ExplainRoute, s.handleExplain)

	// admin routes
	adminMux := http.NewServeMux()
	adminMux.HandleFunc("GET "+ListRunsRoute, s.handleListRuns)
	adminMux.HandleFunc("GET "+GetRunRoute, s.handleGetRun)
	adminMux.HandleFunc("PUT "+UpdateAPLRoute, s.handleUpdateAPL)
	adminMux.HandleFunc("GET "+ListAuditsRoute, s.handleListAudits)
	mux.Handle("/v1/admin/", middleware.AdminAuth(signingKey)(adminMux))

	return middleware.RecoverMiddleware(
		middleware.CorrelationIDMiddleware(
			middleware.LoggingMiddleware(HealthCheckRoute)(
				mux)))
}
