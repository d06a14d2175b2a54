package api

const (
	HealthCheckRoute = "/healthz"
	AboutRoute       = "/v1/about"

	CheckRoute   = "/v1/check"
	ExplainRoute = "/v1/explain"

	ListRunsRoute   = "/v1/admin/runs"
	GetRunRoute     = "/v1/admin/runs/{id}"
	UpdateAPLRoute  = "/v1/admin/apl"
	ListAuditsRoute = "/v1/admin/audit"
)
