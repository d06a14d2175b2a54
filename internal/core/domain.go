package core

import "time"

// Action identifies an ability the APL reasons about.
// Actions are externally defined and immutable; the engine only ever
// compares their game IDs.
type Action struct {
	ID   int    `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// EventType indicates the kind of a combat log event.
type EventType string

const (
	EventCast              EventType = "cast"
	EventBeginCast         EventType = "begincast"
	EventApplyBuff         EventType = "applybuff"
	EventRemoveBuff        EventType = "removebuff"
	EventApplyBuffStack    EventType = "applybuffstack"
	EventRemoveBuffStack   EventType = "removebuffstack"
	EventRefreshBuff       EventType = "refreshbuff"
	EventUpdateSpellUsable EventType = "updatespellusable"
	EventDamage            EventType = "damage"
	EventHeal              EventType = "heal"
	EventEnergize          EventType = "energize"
	EventDeath             EventType = "death"
)

// Event is a single combat log record in report-export shape.
// The engine inspects cast and updatespellusable events directly;
// everything else is only seen by condition update functions, which
// treat kinds they don't care about as no-ops.
type Event struct {
	// Timestamp is milliseconds since the start of the report.
	Timestamp int64 `json:"timestamp"`

	Type EventType `json:"type"`

	// SourceID is the report-local actor id of the event source.
	SourceID int `json:"sourceID"`

	// TargetID is the report-local actor id of the event target.
	TargetID int `json:"targetID"`

	// AbilityGameID is the game id of the ability or effect involved.
	AbilityGameID int `json:"abilityGameID"`

	// IsAvailable is only meaningful on updatespellusable events.
	IsAvailable bool `json:"isAvailable,omitempty"`

	// Stack is only meaningful on buff stack events.
	Stack int `json:"stack,omitempty"`
}

// Violation records a cast that did not follow the highest-priority
// qualifying rule at decision time.
type Violation struct {
	// Rule is the rule that should have been followed.
	Rule Rule `json:"rule"`

	// ExpectedCast is the action the rule would have had the player cast.
	ExpectedCast Action `json:"expectedCast"`

	// ActualCast is the action the player cast instead.
	ActualCast Action `json:"actualCast"`
}

// CheckResult is the outcome of evaluating one event stream against an APL.
// Both lists are in stream order. An empty result means no governed attempt
// was observed (or none had a qualifying rule), not that anything failed.
type CheckResult struct {
	Successes  []Rule      `json:"successes"`
	Violations []Violation `json:"violations"`
}

// CheckRun is a persisted evaluation, as stored by a RunStore.
type CheckRun struct {
	// ID is the unique run id (also returned to the caller).
	ID string `json:"id"`

	CreatedAt time.Time `json:"created_at"`

	// PlayerID is the actor whose casts were evaluated.
	PlayerID int `json:"playerID"`

	// Events is the number of events that were folded over.
	Events int `json:"events"`

	Result CheckResult `json:"result"`
}
