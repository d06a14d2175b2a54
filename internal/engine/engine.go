package engine

import (
	"github.com/frankyi-gh/aplcheck/internal/core"
)

// Checker evaluates event streams against a fixed APL.
type Checker struct {
	apl *core.APL

	// governed maps ability game id to the action of the first rule
	// governing it, so attempt classification is O(1) per event.
	governed map[int]core.Action
}

// New creates a new Checker for the given APL.
func New(apl *core.APL) *Checker {
	governed := make(map[int]core.Action, len(apl.Rules))
	for _, rule := range apl.Rules {
		act := rule.Action()
		if _, seen := governed[act.ID]; !seen {
			governed[act.ID] = act
		}
	}
	return &Checker{
		apl:      apl,
		governed: governed,
	}
}

// checkState is the fold accumulator. It is created per Evaluate call,
// mutated in place event by event, and never escapes the run.
type checkState struct {
	successes  []core.Rule
	violations []core.Violation
	avail      availability
	conds      *conditionStates
}

func newCheckState(apl *core.APL) *checkState {
	return &checkState{
		successes:  make([]core.Rule, 0),
		violations: make([]core.Violation, 0),
		avail:      make(availability),
		conds:      newConditionStates(apl.Conditions),
	}
}

// advance applies ev to the availability and condition state. This runs
// after the decision for ev (if any), so decisions always see the stream
// strictly before their own event.
func (st *checkState) advance(ev core.Event) {
	st.avail.observe(ev)
	st.conds.advance(ev)
}

// Evaluate folds once, left to right, over the event stream and classifies
// every cast of a governed action by the given player.
//
// Per event: first the decision (on state excluding this event), then the
// state update. A cast with no qualifying rule produces no record at all:
// there is no expected action to compare against, so it is neither a
// success nor a diagnosable violation.
func (c *Checker) Evaluate(events []core.Event, playerID int) core.CheckResult {
	st := newCheckState(c.apl)

	for _, ev := range events {
		if actual, ok := c.governedAttempt(ev, playerID); ok {
			if rule, found := applicableRule(c.apl, st.avail, st.conds, ev); found {
				if rule.Action().ID == actual.ID {
					st.successes = append(st.successes, rule)
				} else {
					st.violations = append(st.violations, core.Violation{
						Rule:         rule,
						ExpectedCast: rule.Action(),
						ActualCast:   actual,
					})
				}
			}
		}
		st.advance(ev)
	}

	return core.CheckResult{
		Successes:  st.successes,
		Violations: st.violations,
	}
}

// governedAttempt reports whether ev is a cast by the watched player of an
// action some rule governs, and returns that action.
func (c *Checker) governedAttempt(ev core.Event, playerID int) (core.Action, bool) {
	if ev.Type != core.EventCast || ev.SourceID != playerID {
		return core.Action{}, false
	}
	act, ok := c.governed[ev.AbilityGameID]
	return act, ok
}
