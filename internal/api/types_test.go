package api

import (
	"encoding/json"
	"testing"

	"github.com/frankyi-gh/aplcheck/internal/conditions"
	"github.com/frankyi-gh/aplcheck/internal/core"
)

// The server marshals core.CheckRun directly; RunResponse is what clients
// decode. This pins the two shapes to each other.
func TestRunResponse_MatchesCheckRunWire(t *testing.T) {
	fireball := core.Action{ID: 133, Name: "Fireball"}
	fireBlast := core.Action{ID: 108853, Name: "Fire Blast"}

	guard := conditions.NewBuffPresent(conditions.BuffPresentConfig{Key: "combustion-up", EffectID: 190319})

	run := core.CheckRun{
		ID:       "run-1",
		PlayerID: 7,
		Events:   42,
		Result: core.CheckResult{
			Successes: []core.Rule{
				core.ConditionalRule{Act: fireBlast, Condition: guard},
			},
			Violations: []core.Violation{
				{
					Rule:         core.UnconditionalRule{Act: fireball},
					ExpectedCast: fireball,
					ActualCast:   fireBlast,
				},
			},
		},
	}

	data, err := json.Marshal(run)
	if err != nil {
		t.Fatalf("marshaling run: %v", err)
	}

	var resp RunResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("unmarshaling into RunResponse: %v", err)
	}

	if resp.ID != "run-1" || resp.PlayerID != 7 || resp.Events != 42 {
		t.Errorf("run metadata mismatch: %+v", resp)
	}

	if len(resp.Result.Successes) != 1 {
		t.Fatalf("got %d success(es), want 1", len(resp.Result.Successes))
	}
	success := resp.Result.Successes[0]
	if success.Action != fireBlast || success.Condition != "combustion-up" {
		t.Errorf("success mismatch: %+v", success)
	}

	if len(resp.Result.Violations) != 1 {
		t.Fatalf("got %d violation(s), want 1", len(resp.Result.Violations))
	}
	violation := resp.Result.Violations[0]
	if violation.Rule.Action != fireball || violation.Rule.Condition != "" {
		t.Errorf("violation rule mismatch: %+v", violation.Rule)
	}
	if violation.ExpectedCast != fireball || violation.ActualCast != fireBlast {
		t.Errorf("violation casts mismatch: %+v", violation)
	}
}
