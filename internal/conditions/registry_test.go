package conditions

import (
	"strings"
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr string
	}{
		{
			name: "Buff Present",
			spec: Spec{Key: "c", Type: TypeBuffPresent, Config: map[string]any{"effect_id": 190319}},
		},
		{
			name: "Buff Present With Target",
			spec: Spec{Key: "c", Type: TypeBuffPresent, Config: map[string]any{"effect_id": 190319, "target_id": 7}},
		},
		{
			name:    "Buff Present Missing Effect",
			spec:    Spec{Key: "c", Type: TypeBuffPresent},
			wantErr: "effect_id is required",
		},
		{
			name: "Buff Stacks",
			spec: Spec{Key: "s", Type: TypeBuffStacks, Config: map[string]any{"effect_id": 190319, "min_stacks": 3}},
		},
		{
			name:    "Buff Stacks Missing Threshold",
			spec:    Spec{Key: "s", Type: TypeBuffStacks, Config: map[string]any{"effect_id": 190319}},
			wantErr: "min_stacks must be positive",
		},
		{
			name: "Expr",
			spec: Spec{Key: "e", Type: TypeExpr, Config: map[string]any{"expr": "event.TargetID == 1"}},
		},
		{
			name:    "Expr Missing Expression",
			spec:    Spec{Key: "e", Type: TypeExpr},
			wantErr: "expr is required",
		},
		{
			name:    "Unknown Type",
			spec:    Spec{Key: "x", Type: "astral_alignment"},
			wantErr: "unknown condition type",
		},
		{
			name:    "Missing Key",
			spec:    Spec{Type: TypeBuffPresent, Config: map[string]any{"effect_id": 1}},
			wantErr: "missing key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := Build(tt.spec)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing '%s', got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("got error '%v', want it to contain '%s'", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cond.Key() != tt.spec.Key {
				t.Errorf("got key '%s', want '%s'", cond.Key(), tt.spec.Key)
			}
		})
	}
}

func TestBuildAll_RejectsDuplicateKeys(t *testing.T) {
	specs := []Spec{
		{Key: "c", Type: TypeBuffPresent, Config: map[string]any{"effect_id": 1}},
		{Key: "c", Type: TypeBuffStacks, Config: map[string]any{"effect_id": 2, "min_stacks": 2}},
	}

	_, err := BuildAll(specs)
	if err == nil {
		t.Fatal("expected an error for duplicate condition keys")
	}
	if !strings.Contains(err.Error(), "not unique") {
		t.Errorf("got error '%v', want a uniqueness error", err)
	}
}
