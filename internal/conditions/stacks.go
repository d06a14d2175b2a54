package conditions

import "github.com/frankyi-gh/aplcheck/internal/core"

const TypeBuffStacks = "buff_stacks"

// BuffStacksConfig configures a buff_stacks condition.
type BuffStacksConfig struct {
	Key string `mapstructure:"key"`

	// EffectID is the game id of the stacking buff to track.
	EffectID int `mapstructure:"effect_id"`

	// MinStacks is the stack count required for the condition to hold.
	MinStacks int `mapstructure:"min_stacks"`
}

// NewBuffStacks tracks the stack count of the configured effect.
// applybuff seeds one stack, stack events carry the absolute count,
// removebuff clears it. Validates stacks >= min_stacks.
func NewBuffStacks(cfg BuffStacksConfig) core.Condition {
	return New(cfg.Key,
		func() int { return 0 },
		func(stacks int, ev core.Event) int {
			if ev.AbilityGameID != cfg.EffectID {
				return stacks
			}
			switch ev.Type {
			case core.EventApplyBuff:
				return 1
			case core.EventApplyBuffStack, core.EventRemoveBuffStack:
				return ev.Stack
			case core.EventRemoveBuff:
				return 0
			}
			return stacks
		},
		func(stacks int, _ core.Event) bool { return stacks >= cfg.MinStacks },
	)
}
