package conditions

import (
	"testing"

	"github.com/frankyi-gh/aplcheck/internal/core"
)

const combustion = 190319

// run threads a sequence of events through a condition the way the engine
// does and returns the validation outcome against a final probe event.
func run(cond core.Condition, events []core.Event) bool {
	state := cond.Init()
	for _, ev := range events {
		state = cond.Update(state, ev)
	}
	return cond.Validate(state, core.Event{Type: core.EventCast})
}

func TestBuffPresent(t *testing.T) {
	tests := []struct {
		name   string
		cfg    BuffPresentConfig
		events []core.Event
		want   bool
	}{
		{
			name: "Starts False",
			cfg:  BuffPresentConfig{Key: "c", EffectID: combustion},
			want: false,
		},
		{
			name: "Apply Sets True",
			cfg:  BuffPresentConfig{Key: "c", EffectID: combustion},
			events: []core.Event{
				{Type: core.EventApplyBuff, AbilityGameID: combustion},
			},
			want: true,
		},
		{
			name: "Remove Sets False",
			cfg:  BuffPresentConfig{Key: "c", EffectID: combustion},
			events: []core.Event{
				{Type: core.EventApplyBuff, AbilityGameID: combustion},
				{Type: core.EventRemoveBuff, AbilityGameID: combustion},
			},
			want: false,
		},
		{
			name: "Other Effect Is A Noop",
			cfg:  BuffPresentConfig{Key: "c", EffectID: combustion},
			events: []core.Event{
				{Type: core.EventApplyBuff, AbilityGameID: 12345},
			},
			want: false,
		},
		{
			name: "Irrelevant Event Types Are Noops",
			cfg:  BuffPresentConfig{Key: "c", EffectID: combustion},
			events: []core.Event{
				{Type: core.EventApplyBuff, AbilityGameID: combustion},
				{Type: core.EventDamage, AbilityGameID: combustion},
				{Type: core.EventHeal, AbilityGameID: combustion},
				{Type: core.EventDeath},
			},
			want: true,
		},
		{
			name: "Target Filter Ignores Other Targets",
			cfg:  BuffPresentConfig{Key: "c", EffectID: combustion, TargetID: 7},
			events: []core.Event{
				{Type: core.EventApplyBuff, AbilityGameID: combustion, TargetID: 3},
			},
			want: false,
		},
		{
			name: "Target Filter Matches Configured Target",
			cfg:  BuffPresentConfig{Key: "c", EffectID: combustion, TargetID: 7},
			events: []core.Event{
				{Type: core.EventApplyBuff, AbilityGameID: combustion, TargetID: 7},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(NewBuffPresent(tt.cfg), tt.events); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuffStacks(t *testing.T) {
	cfg := BuffStacksConfig{Key: "s", EffectID: combustion, MinStacks: 3}

	tests := []struct {
		name   string
		events []core.Event
		want   bool
	}{
		{
			name: "Starts At Zero",
			want: false,
		},
		{
			name: "Apply Is One Stack",
			events: []core.Event{
				{Type: core.EventApplyBuff, AbilityGameID: combustion},
			},
			want: false,
		},
		{
			name: "Stack Events Carry Absolute Count",
			events: []core.Event{
				{Type: core.EventApplyBuff, AbilityGameID: combustion},
				{Type: core.EventApplyBuffStack, AbilityGameID: combustion, Stack: 2},
				{Type: core.EventApplyBuffStack, AbilityGameID: combustion, Stack: 3},
			},
			want: true,
		},
		{
			name: "Dropping Below Threshold",
			events: []core.Event{
				{Type: core.EventApplyBuff, AbilityGameID: combustion},
				{Type: core.EventApplyBuffStack, AbilityGameID: combustion, Stack: 3},
				{Type: core.EventRemoveBuffStack, AbilityGameID: combustion, Stack: 2},
			},
			want: false,
		},
		{
			name: "Remove Clears Stacks",
			events: []core.Event{
				{Type: core.EventApplyBuffStack, AbilityGameID: combustion, Stack: 5},
				{Type: core.EventRemoveBuff, AbilityGameID: combustion},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(NewBuffStacks(cfg), tt.events); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpr(t *testing.T) {
	cond, err := NewExpr(ExprConfig{Key: "boss-target", Expr: "event.TargetID == 42"})
	if err != nil {
		t.Fatalf("building expr condition: %v", err)
	}

	state := cond.Init()
	if cond.Validate(state, core.Event{Type: core.EventCast, TargetID: 7}) {
		t.Error("expression must not hold for a non-matching event")
	}
	if !cond.Validate(state, core.Event{Type: core.EventCast, TargetID: 42}) {
		t.Error("expression must hold for a matching event")
	}

	// update is the identity, whatever flows through
	state = cond.Update(state, core.Event{Type: core.EventDamage})
	if !cond.Validate(state, core.Event{Type: core.EventCast, TargetID: 42}) {
		t.Error("state threading must not affect a stateless expr condition")
	}
}

func TestExpr_InvalidExpression(t *testing.T) {
	if _, err := NewExpr(ExprConfig{Key: "broken", Expr: "event.TargetID +"}); err == nil {
		t.Error("expected a compile error for a malformed expression")
	}
	if _, err := NewExpr(ExprConfig{Key: "not-bool", Expr: "event.TargetID"}); err == nil {
		t.Error("expected a compile error for a non-boolean expression")
	}
}

// nil boxed state must behave exactly like the initial state: this is the
// contract the engine relies on for rules guarded by unregistered conditions.
func TestTyped_NilStateFallsBackToInit(t *testing.T) {
	cond := NewBuffPresent(BuffPresentConfig{Key: "c", EffectID: combustion})

	if cond.Validate(nil, core.Event{Type: core.EventCast}) {
		t.Error("nil state must validate like the initial state (false)")
	}

	next := cond.Update(nil, core.Event{Type: core.EventApplyBuff, AbilityGameID: combustion})
	if active, ok := next.(bool); !ok || !active {
		t.Errorf("update from nil state must proceed from init: got %v", next)
	}
}
