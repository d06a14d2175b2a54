package engine

import "github.com/frankyi-gh/aplcheck/internal/core"

// conditionStates holds the current boxed state of every registered
// condition, keyed by condition key.
type conditionStates struct {
	conds  []core.Condition
	values map[string]any
}

func newConditionStates(conds []core.Condition) *conditionStates {
	values := make(map[string]any, len(conds))
	for _, cond := range conds {
		// last writer wins on duplicate keys; construction-time
		// validation is expected to have rejected those
		values[cond.Key()] = cond.Init()
	}
	return &conditionStates{
		conds:  conds,
		values: values,
	}
}

// advance feeds ev to every registered condition, in registration order.
// Each condition's update sees its own state as of before this event;
// deciding whether ev is relevant is the condition's job.
func (s *conditionStates) advance(ev core.Event) {
	for _, cond := range s.conds {
		key := cond.Key()
		s.values[key] = cond.Update(s.values[key], ev)
	}
}

// value returns the current state for the given key. A key that was never
// registered yields nil, which conditions must treat like their initial
// state. The engine does not police APL well-formedness.
func (s *conditionStates) value(key string) any {
	return s.values[key]
}
