package audit

import (
	"fmt"

	"github.com/frankyi-gh/aplcheck/internal/config"
	"github.com/frankyi-gh/aplcheck/internal/core"
)

// FromConfig builds the auditor the config asks for. Disabled auditing
// yields a NoopAuditor so callers never need a nil check.
func FromConfig(cfg config.AuditConfig) (core.Auditor, error) {
	if !cfg.Enabled {
		return NewNoopAuditor(), nil
	}

	switch cfg.Type {
	case "file":
		if cfg.Path == "" {
			return nil, fmt.Errorf("audit type 'file' requires a path")
		}
		return NewFileAuditor(cfg.Path)
	case "memory", "":
		return NewInMemoryAuditor(), nil
	default:
		return nil, fmt.Errorf("unknown audit type '%s'", cfg.Type)
	}
}
