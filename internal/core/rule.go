package core

import "encoding/json"

// Rule is one entry of an APL. It is a closed two-variant sum:
// UnconditionalRule applies whenever its action is available,
// ConditionalRule additionally requires its guard condition to validate.
// Priority is positional: the first rule in the APL wins.
type Rule interface {
	// Action returns the action this rule governs.
	Action() Action

	// sealed prevents rule variants outside this package, so the
	// matcher can dispatch exhaustively.
	sealed()
}

var (
	_ Rule = UnconditionalRule{}
	_ Rule = ConditionalRule{}
)

// UnconditionalRule always applies if its action is available.
type UnconditionalRule struct {
	Act Action
}

func (r UnconditionalRule) Action() Action { return r.Act }
func (r UnconditionalRule) sealed()        {}

func (r UnconditionalRule) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Action Action `json:"action"`
	}{Action: r.Act})
}

// ConditionalRule applies if its action is available and its condition
// validates against the state accumulated before the attempt event.
type ConditionalRule struct {
	Act       Action
	Condition Condition
}

func (r ConditionalRule) Action() Action { return r.Act }
func (r ConditionalRule) sealed()        {}

func (r ConditionalRule) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Action    Action `json:"action"`
		Condition string `json:"condition"`
	}{Action: r.Act, Condition: r.Condition.Key()})
}

// APL is an ordered priority list of rules plus the conditions whose
// state the engine tracks across the event stream.
//
// Conditions are registered by key. A rule may carry a condition that was
// never registered here; the engine then validates it against an absent
// state, which conditions must treat like their initial state.
type APL struct {
	Conditions []Condition
	Rules      []Rule
}

// Governed returns the action governed by some rule for the given ability
// game id, or false if no rule mentions it.
func (a *APL) Governed(abilityGameID int) (Action, bool) {
	for _, rule := range a.Rules {
		if act := rule.Action(); act.ID == abilityGameID {
			return act, true
		}
	}
	return Action{}, false
}
