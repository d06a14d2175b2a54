package engine

import (
	"fmt"

	"github.com/frankyi-gh/aplcheck/internal/core"
)

// EvaluateTrace runs the same fold as Evaluate but records, per governed
// attempt, why each rule did or did not qualify. Verdicts always agree
// with Evaluate on identical input; the trace only adds detail.
func (c *Checker) EvaluateTrace(events []core.Event, playerID int) core.CheckTrace {
	st := newCheckState(c.apl)

	trace := core.CheckTrace{
		PlayerID: playerID,
		Attempts: make([]core.AttemptTrace, 0),
	}

	for _, ev := range events {
		if actual, ok := c.governedAttempt(ev, playerID); ok {
			trace.Attempts = append(trace.Attempts, c.traceAttempt(st, ev, actual))
		}
		st.advance(ev)
	}

	return trace
}

// traceAttempt scans all rules for a single attempt, collecting a
// RuleTrace per rule up to and including the first qualifying one.
func (c *Checker) traceAttempt(st *checkState, ev core.Event, actual core.Action) core.AttemptTrace {
	attempt := core.AttemptTrace{
		Timestamp:  ev.Timestamp,
		ActualCast: actual,
		Verdict:    core.VerdictNoRule,
	}

	for _, rule := range c.apl.Rules {
		rt := core.RuleTrace{Action: rule.Action()}

		if !st.avail.allows(rule.Action().ID) {
			rt.Reason = "marked unavailable at decision time"
			attempt.Rules = append(attempt.Rules, rt)
			continue
		}

		switch r := rule.(type) {
		case core.UnconditionalRule:
			rt.Qualified = true
		case core.ConditionalRule:
			rt.ConditionKey = r.Condition.Key()
			if r.Condition.Validate(st.conds.value(rt.ConditionKey), ev) {
				rt.Qualified = true
			} else {
				rt.Reason = fmt.Sprintf("condition '%s' not satisfied", rt.ConditionKey)
			}
		}

		attempt.Rules = append(attempt.Rules, rt)

		if rt.Qualified {
			expected := rule.Action()
			attempt.ExpectedCast = &expected
			if expected.ID == actual.ID {
				attempt.Verdict = core.VerdictSuccess
			} else {
				attempt.Verdict = core.VerdictViolation
			}
			break
		}
	}

	return attempt
}
