package engine

import "github.com/frankyi-gh/aplcheck/internal/core"

// applicableRule scans the APL in declaration order and returns the first
// rule whose action is not known to be unavailable and whose guard (if any)
// validates against the state accumulated strictly before the attempt
// event. Declaration order is the only tie-break; ties cannot happen.
func applicableRule(apl *core.APL, avail availability, conds *conditionStates, attempt core.Event) (core.Rule, bool) {
	for _, rule := range apl.Rules {
		if !avail.allows(rule.Action().ID) {
			continue
		}
		switch r := rule.(type) {
		case core.UnconditionalRule:
			return r, true
		case core.ConditionalRule:
			if r.Condition.Validate(conds.value(r.Condition.Key()), attempt) {
				return r, true
			}
		}
	}
	return nil, false
}
