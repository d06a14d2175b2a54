package core

// Condition is a named state machine tracking a derived fact (e.g. "is this
// buff active") across the event stream, validated at decision time.
//
// State is opaque to the engine: it seeds it with Init, threads it through
// Update for every event in stream order, and hands it back to Validate when
// a rule guarded by this condition is considered. Update must be total
// (events the condition does not care about return the state unchanged)
// and Validate must not mutate state.
//
// The boxed `any` state is an engine-side concern only; condition
// implementations get their statically typed state back through the
// generic adapter in internal/conditions.
type Condition interface {
	// Key uniquely identifies this condition within one APL. Two registered
	// conditions sharing a key would silently share (and clobber) state,
	// which is why APL construction rejects duplicates up front.
	Key() string

	// Init returns the state before any event has been seen.
	Init() any

	// Update returns the state after applying ev to the given state.
	Update(state any, ev Event) any

	// Validate reports whether the condition holds, given the state as of
	// strictly before the triggering event.
	Validate(state any, ev Event) bool
}
