package conditions

import "github.com/frankyi-gh/aplcheck/internal/core"

const TypeBuffPresent = "buff_present"

// BuffPresentConfig configures a buff_present condition.
type BuffPresentConfig struct {
	Key string `mapstructure:"key"`

	// EffectID is the game id of the buff/debuff to track.
	EffectID int `mapstructure:"effect_id"`

	// TargetID optionally restricts tracking to one actor.
	// Zero means any target.
	TargetID int `mapstructure:"target_id"`
}

// NewBuffPresent tracks whether the configured effect is currently active.
// State is a bool starting at false, set by applybuff and cleared by
// removebuff for the matching effect; all other events are no-ops.
// Validation is just the current bool, the triggering event is ignored.
func NewBuffPresent(cfg BuffPresentConfig) core.Condition {
	matches := func(ev core.Event) bool {
		if ev.AbilityGameID != cfg.EffectID {
			return false
		}
		return cfg.TargetID == 0 || ev.TargetID == cfg.TargetID
	}

	return New(cfg.Key,
		func() bool { return false },
		func(active bool, ev core.Event) bool {
			switch ev.Type {
			case core.EventApplyBuff:
				if matches(ev) {
					return true
				}
			case core.EventRemoveBuff:
				if matches(ev) {
					return false
				}
			}
			return active
		},
		func(active bool, _ core.Event) bool { return active },
	)
}
