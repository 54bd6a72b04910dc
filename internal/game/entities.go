package game

import (
	"github.com/google/uuid"

	"clash-arena/internal/catalog"
)

// Owner identifies which of the two sides an entity belongs to. The wire
// protocol names the sides "player" and "opponent"; the opponent side is
// the mirrored one.
type Owner string

const (
	OwnerPlayer   Owner = "player"
	OwnerOpponent Owner = "opponent"
)

// Other returns the opposing side
func (o Owner) Other() Owner {
	if o == OwnerPlayer {
		return OwnerOpponent
	}
	return OwnerPlayer
}

// TroopStatus is the activity state of a troop
type TroopStatus string

const (
	StatusWalk  TroopStatus = "WALK"
	StatusFight TroopStatus = "FIGHT"
	StatusIdle  TroopStatus = "IDLE"
)

// Troop is one deployed unit. It is created by the deployment service,
// mutated every tick by the movement and combat resolvers, and removed from
// the registry once its health drops to or below zero. TargetID is a
// reference, not ownership: it is cleared when the referent dies.
type Troop struct {
	ID        string
	Type      string
	Owner     Owner
	Position  Position
	Health    int
	MaxHealth int
	Status    TroopStatus
	Speed     catalog.Speed
	Range     int
	Damage    int
	HitSpeed  float64
	TargetID  string
	Targets   []catalog.TargetType
}

// Tower is one of the six fixed structures. Its position never changes after
// creation; it leaves the active set when destroyed, and a destroyed KING
// tower ends the match.
type Tower struct {
	ID        string              `json:"id"`
	Kind      catalog.TowerKind   `json:"type"`
	Owner     Owner               `json:"owner"`
	Position  Position            `json:"position"`
	Health    int                 `json:"health"`
	MaxHealth int                 `json:"maxHealth"`
	Damage    int                 `json:"damage"`
	Range     int                 `json:"range"`
	HitSpeed  float64             `json:"hitSpeed"`
	TargetID  string              `json:"targetId,omitempty"`
}

// towerLayouts lists the fixed tower placements per side. The opponent
// positions are spelled out rather than computed with Mirror because the
// 24-column grid has no exact center: both kings sit on column 11.
var towerLayouts = map[Owner][]struct {
	kind catalog.TowerKind
	pos  Position
}{
	OwnerPlayer: {
		{catalog.TowerQueen, Position{X: 3, Y: 35}},
		{catalog.TowerQueen, Position{X: 20, Y: 35}},
		{catalog.TowerKing, Position{X: 11, Y: 38}},
	},
	OwnerOpponent: {
		{catalog.TowerQueen, Position{X: 3, Y: 3}},
		{catalog.TowerQueen, Position{X: 20, Y: 3}},
		{catalog.TowerKing, Position{X: 11, Y: 0}},
	},
}

// newTower builds a tower of the given kind from the catalog stats
func newTower(kind catalog.TowerKind, owner Owner, pos Position) *Tower {
	stats := catalog.Tower(kind)
	return &Tower{
		ID:        uuid.New().String(),
		Kind:      kind,
		Owner:     owner,
		Position:  pos,
		Health:    stats.Health,
		MaxHealth: stats.Health,
		Damage:    stats.Damage,
		Range:     stats.Range,
		HitSpeed:  stats.HitSpeed,
	}
}

// initialTowers creates the three towers per side at their fixed positions
func initialTowers() []*Tower {
	towers := make([]*Tower, 0, 6)
	for _, owner := range []Owner{OwnerPlayer, OwnerOpponent} {
		for _, t := range towerLayouts[owner] {
			towers = append(towers, newTower(t.kind, owner, t.pos))
		}
	}
	return towers
}
