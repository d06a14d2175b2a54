package api

import (
	"time"

	"github.com/frankyi-gh/aplcheck/internal/core"
)

// Wire representations of check results. The server marshals core types
// directly (rule variants encode themselves as action + condition key);
// these mirror that shape with concrete types so clients can decode it.

type RuleSummary struct {
	Action    core.Action `json:"action"`
	Condition string      `json:"condition,omitempty"`
}

type ViolationSummary struct {
	Rule         RuleSummary `json:"rule"`
	ExpectedCast core.Action `json:"expectedCast"`
	ActualCast   core.Action `json:"actualCast"`
}

type ResultSummary struct {
	Successes  []RuleSummary      `json:"successes"`
	Violations []ViolationSummary `json:"violations"`
}

// RunResponse mirrors core.CheckRun on the wire.
type RunResponse struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	PlayerID  int           `json:"playerID"`
	Events    int           `json:"events"`
	Result    ResultSummary `json:"result"`
}
