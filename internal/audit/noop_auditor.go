package audit

import "github.com/frankyi-gh/aplcheck/internal/core"

var _ core.Auditor = (*NoopAuditor)(nil)

// NoopAuditor discards every entry. It backs deployments with auditing
// disabled and one-shot CLI evaluations, so callers never have to nil-check
// their auditor.
type NoopAuditor struct{}

func NewNoopAuditor() *NoopAuditor {
	return &NoopAuditor{}
}

func (n *NoopAuditor) Log(core.AuditEntry) error {
	return nil
}

func (n *NoopAuditor) Close() error {
	return nil
}
