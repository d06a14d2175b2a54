package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frankyi-gh/aplcheck/internal/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aplcheck.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

const validConfig = `
apl:
  conditions:
    - key: combustion-up
      type: buff_present
      effect_id: 190319
    - key: heating-up
      type: buff_stacks
      effect_id: 48107
      min_stacks: 2
  rules:
    - action: {id: 108853, name: Fire Blast}
      condition: combustion-up
    - action: {id: 2948, name: Scorch}
      condition: heating-up
    - action: {id: 133, name: Fireball}
server:
  addr: ":8913"
  signing_key: "test-key"
`

func TestLoad(t *testing.T) {
	path := writeConfig(t, validConfig)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":8913" {
		t.Errorf("got addr '%s', want ':8913'", cfg.Server.Addr)
	}

	apl, err := cfg.APL.Build()
	if err != nil {
		t.Fatalf("building apl: %v", err)
	}

	if len(apl.Conditions) != 2 {
		t.Fatalf("got %d condition(s), want 2", len(apl.Conditions))
	}
	if apl.Conditions[0].Key() != "combustion-up" {
		t.Errorf("got condition key '%s', want 'combustion-up'", apl.Conditions[0].Key())
	}

	if len(apl.Rules) != 3 {
		t.Fatalf("got %d rule(s), want 3", len(apl.Rules))
	}

	// declaration order is priority order; variants must match the config
	first, ok := apl.Rules[0].(core.ConditionalRule)
	if !ok {
		t.Fatalf("rule #0: got %T, want ConditionalRule", apl.Rules[0])
	}
	if first.Act.ID != 108853 || first.Condition.Key() != "combustion-up" {
		t.Errorf("rule #0 mismatch: %+v", first)
	}

	if _, ok := apl.Rules[2].(core.UnconditionalRule); !ok {
		t.Fatalf("rule #2: got %T, want UnconditionalRule", apl.Rules[2])
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "No Rules",
			content: `
apl:
  conditions:
    - key: c
      type: buff_present
      effect_id: 1
`,
			wantErr: "no rules",
		},
		{
			name: "Duplicate Condition Keys",
			content: `
apl:
  conditions:
    - key: c
      type: buff_present
      effect_id: 1
    - key: c
      type: buff_present
      effect_id: 2
  rules:
    - action: {id: 133, name: Fireball}
`,
			wantErr: "not unique",
		},
		{
			name: "Unknown Condition Reference",
			content: `
apl:
  rules:
    - action: {id: 133, name: Fireball}
      condition: no-such-condition
`,
			wantErr: "unknown condition",
		},
		{
			name: "Missing Action ID",
			content: `
apl:
  rules:
    - action: {name: Fireball}
`,
			wantErr: "missing action id",
		},
		{
			name: "Uncompilable Expression",
			content: `
apl:
  conditions:
    - key: broken
      type: expr
      expr: "event.TargetID +"
  rules:
    - action: {id: 133, name: Fireball}
      condition: broken
`,
			wantErr: "compiling expr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected error containing '%s', got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got error '%v', want it to contain '%s'", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAPL_AcceptsBareAPLFile(t *testing.T) {
	path := writeConfig(t, `
apl:
  rules:
    - action: {id: 133, name: Fireball}
`)

	apl, err := LoadAPL(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apl.Rules) != 1 {
		t.Fatalf("got %d rule(s), want 1", len(apl.Rules))
	}
}
