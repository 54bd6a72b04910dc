package game

import "time"

// EntitySnapshot is the public projection of one troop for broadcast
type EntitySnapshot struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Position  Position    `json:"pos"`
	Health    int         `json:"hp"`
	MaxHealth int         `json:"maxHp"`
	Status    TroopStatus `json:"status"`
	Owner     Owner       `json:"owner"`
	TargetID  string      `json:"targetId,omitempty"`
}

// SideState is the per-side public state carried in a snapshot
type SideState struct {
	Elixir int `json:"elixir"`
}

// PlayersState groups both sides' public state
type PlayersState struct {
	Player   SideState `json:"player"`
	Opponent SideState `json:"opponent"`
}

// Snapshot is the full-state broadcast produced once per tick. It is not a
// delta: clients replace their view of the world with each snapshot, so a
// dropped delivery is healed by the next tick.
type Snapshot struct {
	Tick      int              `json:"tick"`
	Timestamp int64            `json:"timestamp"`
	Entities  []EntitySnapshot `json:"entities"`
	Towers    []Tower          `json:"towers"`
	Players   PlayersState     `json:"players"`
	Events    []Event          `json:"events"`
}

// buildSnapshot projects the current state into an immutable snapshot.
// Troops appear in registry insertion order; towers are copied by value so
// later ticks cannot mutate an emitted snapshot.
func (s *Simulation) buildSnapshot(events []Event) Snapshot {
	entities := make([]EntitySnapshot, 0, s.troops.count())
	for _, t := range s.troops.all() {
		entities = append(entities, EntitySnapshot{
			ID:        t.ID,
			Type:      t.Type,
			Position:  t.Position,
			Health:    t.Health,
			MaxHealth: t.MaxHealth,
			Status:    t.Status,
			Owner:     t.Owner,
			TargetID:  t.TargetID,
		})
	}

	towers := make([]Tower, 0, len(s.towers))
	for _, t := range s.towers {
		towers = append(towers, *t)
	}

	if events == nil {
		events = []Event{}
	}

	return Snapshot{
		Tick:      s.tick,
		Timestamp: time.Now().UnixMilli(),
		Entities:  entities,
		Towers:    towers,
		Players: PlayersState{
			Player:   SideState{Elixir: s.elixir[OwnerPlayer]},
			Opponent: SideState{Elixir: s.elixir[OwnerOpponent]},
		},
		Events: events,
	}
}
