package engine

import "github.com/frankyi-gh/aplcheck/internal/core"

// availability holds the latest updatespellusable snapshot per ability
// game id. Stream order is trusted: the most recent snapshot wins and
// out-of-order events are not reconciled.
type availability map[int]core.Event

func (a availability) observe(ev core.Event) {
	if ev.Type != core.EventUpdateSpellUsable {
		return
	}
	a[ev.AbilityGameID] = ev
}

// allows reports whether the given action may be cast. An ability the
// stream never reported on has no snapshot, which means no constraint
// information exists, not that the ability is unavailable.
func (a availability) allows(abilityGameID int) bool {
	snap, ok := a[abilityGameID]
	if !ok {
		return true
	}
	return snap.IsAvailable
}
