package core

import "time"

type AuditEntry struct {
	// ID is the unique request ID (X-Correlation-ID)
	ID string `json:"id"`

	// Time is the timestamp of the event
	Time time.Time `json:"time"`

	// Action describing what happened (e.g. "check.run", "apl.update")
	Action string `json:"action"`

	// PlayerID is the actor that was evaluated, if any.
	PlayerID int `json:"playerID,omitempty"`

	// RunID references the stored check run, if one was produced.
	RunID string `json:"run_id,omitempty"`

	// Result summary
	Events     int    `json:"events,omitempty"`
	Successes  int    `json:"successes,omitempty"`
	Violations int    `json:"violations,omitempty"`
	Error      string `json:"error,omitempty"`

	// Metadata contains extra request details
	Metadata map[string]any `json:"metadata,omitempty"`
}

type Auditor interface {
	Log(entry AuditEntry) error
	Close() error
}

// AuditReader is implemented by auditors that can be queried back. Auditors
// that only forward entries (file, noop) do not implement it.
type AuditReader interface {
	GetRecent(limit int) ([]AuditEntry, error)
	Find(filter func(entry AuditEntry) bool, limit int) ([]AuditEntry, error)
}
