package conditions

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/frankyi-gh/aplcheck/internal/core"
)

// Spec is the raw YAML declaration of a condition: a unique key, a type
// naming the implementation, and inline type-specific fields.
type Spec struct {
	Key    string         `yaml:"key"`
	Type   string         `yaml:"type"`
	Config map[string]any `yaml:",inline"`
}

// Build constructs the condition a Spec describes.
func Build(spec Spec) (core.Condition, error) {
	if spec.Key == "" {
		return nil, fmt.Errorf("condition missing key")
	}

	switch spec.Type {
	case TypeBuffPresent:
		var cfg BuffPresentConfig
		if err := mapstructure.Decode(spec.Config, &cfg); err != nil {
			return nil, fmt.Errorf("decoding buff_present condition '%s': %w", spec.Key, err)
		}
		if cfg.EffectID == 0 {
			return nil, fmt.Errorf("condition '%s': effect_id is required", spec.Key)
		}
		cfg.Key = spec.Key
		return NewBuffPresent(cfg), nil

	case TypeBuffStacks:
		var cfg BuffStacksConfig
		if err := mapstructure.Decode(spec.Config, &cfg); err != nil {
			return nil, fmt.Errorf("decoding buff_stacks condition '%s': %w", spec.Key, err)
		}
		if cfg.EffectID == 0 {
			return nil, fmt.Errorf("condition '%s': effect_id is required", spec.Key)
		}
		if cfg.MinStacks <= 0 {
			return nil, fmt.Errorf("condition '%s': min_stacks must be positive", spec.Key)
		}
		cfg.Key = spec.Key
		return NewBuffStacks(cfg), nil

	case TypeExpr:
		var cfg ExprConfig
		if err := mapstructure.Decode(spec.Config, &cfg); err != nil {
			return nil, fmt.Errorf("decoding expr condition '%s': %w", spec.Key, err)
		}
		if cfg.Expr == "" {
			return nil, fmt.Errorf("condition '%s': expr is required", spec.Key)
		}
		cfg.Key = spec.Key
		return NewExpr(cfg)

	default:
		return nil, fmt.Errorf("unknown condition type '%s' for condition '%s'", spec.Type, spec.Key)
	}
}

// BuildAll constructs every declared condition and rejects duplicate keys.
// Duplicate keys would silently share state inside the engine, so they are
// a configuration error here rather than a runtime surprise.
func BuildAll(specs []Spec) ([]core.Condition, error) {
	seen := make(map[string]struct{}, len(specs))
	conds := make([]core.Condition, 0, len(specs))

	for _, spec := range specs {
		if _, exists := seen[spec.Key]; exists {
			return nil, fmt.Errorf("condition key '%s' is not unique", spec.Key)
		}

		cond, err := Build(spec)
		if err != nil {
			return nil, err
		}

		seen[spec.Key] = struct{}{}
		conds = append(conds, cond)
	}

	return conds, nil
}
