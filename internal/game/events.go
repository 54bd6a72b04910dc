package game

// EventType names one kind of discrete per-tick event. Events are advisory
// presentation hints carried alongside the full-state snapshot; clients never
// need them to reconstruct state.
type EventType string

const (
	EventDamage EventType = "damage"
	EventSpawn  EventType = "spawn"
	EventDie    EventType = "die"
	EventElixir EventType = "elixir"
	EventTarget EventType = "target"
)

// EventPayload carries the fields relevant to an event; unused fields are
// omitted on the wire.
type EventPayload struct {
	EntityID string    `json:"entityId,omitempty"`
	TargetID string    `json:"targetId,omitempty"`
	Damage   int       `json:"damage,omitempty"`
	Position *Position `json:"position,omitempty"`
	CardType string    `json:"cardType,omitempty"`
	Owner    Owner     `json:"owner,omitempty"`
}

// Event is one discrete occurrence within a tick
type Event struct {
	Type    EventType    `json:"type"`
	Tick    int          `json:"tick"`
	Payload EventPayload `json:"payload"`
}
