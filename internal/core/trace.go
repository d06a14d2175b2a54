package core

// Verdict classifies a single governed attempt.
type Verdict string

const (
	VerdictSuccess   Verdict = "success"
	VerdictViolation Verdict = "violation"
	// VerdictNoRule marks an attempt no rule qualified for. These produce
	// no record in CheckResult; the trace keeps them visible for debugging.
	VerdictNoRule Verdict = "no_rule"
)

// CheckTrace is the detailed counterpart of CheckResult: every governed
// attempt with a per-rule breakdown of why each rule did or did not qualify.
type CheckTrace struct {
	PlayerID int            `json:"playerID"`
	Attempts []AttemptTrace `json:"attempts"`
}

// AttemptTrace captures the decision made for one governed cast.
type AttemptTrace struct {
	Timestamp  int64   `json:"timestamp"`
	ActualCast Action  `json:"actualCast"`
	Verdict    Verdict `json:"verdict"`

	// ExpectedCast is set unless the verdict is no_rule.
	ExpectedCast *Action `json:"expectedCast,omitempty"`

	// Rules holds one entry per APL rule, in priority order, up to and
	// including the first qualifying rule (all of them for no_rule).
	Rules []RuleTrace `json:"rules"`
}

// RuleTrace captures why a specific rule qualified or was passed over.
type RuleTrace struct {
	Action       Action `json:"action"`
	ConditionKey string `json:"condition_key,omitempty"`
	Qualified    bool   `json:"qualified"`
	Reason       string `json:"reason,omitempty"`
}
