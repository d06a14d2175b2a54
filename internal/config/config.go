package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/frankyi-gh/aplcheck/internal/conditions"
	"github.com/frankyi-gh/aplcheck/internal/core"
)

type Config struct {
	APL    APLConfig    `yaml:"apl"`
	Server ServerConfig `yaml:"server"`
	Audit  AuditConfig  `yaml:"audit"`
}

// APLConfig is the declarative form of an APL: named conditions plus the
// priority-ordered rule list referencing them.
type APLConfig struct {
	Conditions []conditions.Spec `yaml:"conditions"`
	Rules      []RuleConfig      `yaml:"rules"`
}

// RuleConfig is one APL entry. Condition is the key of a declared
// condition; leaving it empty makes the rule unconditional.
type RuleConfig struct {
	Action    core.Action `yaml:"action"`
	Condition string      `yaml:"condition"`
}

// ServerConfig holds configuration for the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`

	// SigningKey is the shared HMAC key admin tokens are verified with.
	SigningKey string `yaml:"signing_key"`
}

// AuditConfig holds configuration for auditing.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
	Type    string `yaml:"type"` // e.g., "file", "memory"
}

// Load reads and parses the configuration file at the given path.
// It returns a Config struct or an error if loading/parsing/validation fails.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file '%s': %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file '%s': %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config file '%s': %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := c.APL.Validate(); err != nil {
		return fmt.Errorf("validating apl: %w", err)
	}
	return nil
}

// Validate checks the APL declaration by actually building it. Building
// catches everything worth rejecting up front: empty rule lists, unknown
// or duplicate condition keys, bad condition configs, uncompilable
// expressions.
func (a *APLConfig) Validate() error {
	_, err := a.Build()
	return err
}

// Build constructs the runtime APL from its declarative form.
//
// Rules must reference declared conditions; rejecting unknown references
// here is deliberately stricter than the engine, which tolerates a rule
// carrying an unregistered condition (it validates against absent state).
func (a *APLConfig) Build() (*core.APL, error) {
	if len(a.Rules) == 0 {
		return nil, fmt.Errorf("apl has no rules")
	}

	conds, err := conditions.BuildAll(a.Conditions)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]core.Condition, len(conds))
	for _, cond := range conds {
		byKey[cond.Key()] = cond
	}

	rules := make([]core.Rule, 0, len(a.Rules))
	for i, rc := range a.Rules {
		if rc.Action.ID == 0 {
			return nil, fmt.Errorf("rule #%d missing action id", i)
		}

		if rc.Condition == "" {
			rules = append(rules, core.UnconditionalRule{Act: rc.Action})
			continue
		}

		cond, ok := byKey[rc.Condition]
		if !ok {
			return nil, fmt.Errorf("rule #%d ('%s') references unknown condition '%s'", i, rc.Action.Name, rc.Condition)
		}
		rules = append(rules, core.ConditionalRule{Act: rc.Action, Condition: cond})
	}

	return &core.APL{
		Conditions: conds,
		Rules:      rules,
	}, nil
}

// LoadAPL reads an APL definition from a config file. The file may be a
// full server config; only the apl section is required.
func LoadAPL(path string) (*core.APL, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading apl file '%s': %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing apl file '%s': %w", path, err)
	}

	apl, err := cfg.APL.Build()
	if err != nil {
		return nil, fmt.Errorf("building apl from '%s': %w", path, err)
	}
	return apl, nil
}
