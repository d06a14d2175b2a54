package engine

import (
	"testing"
)

func TestAvailability(t *testing.T) {
	a := make(availability)

	if !a.allows(fireball.ID) {
		t.Error("ability without a snapshot must be treated as available")
	}

	a.observe(usable(fireball, false))
	if a.allows(fireball.ID) {
		t.Error("ability marked unavailable must not be allowed")
	}

	// non-availability events must not touch snapshots
	a.observe(cast(watchedPlayer, fireball))
	if a.allows(fireball.ID) {
		t.Error("cast event must not overwrite the availability snapshot")
	}

	a.observe(usable(fireball, true))
	if !a.allows(fireball.ID) {
		t.Error("latest snapshot must win")
	}
}
