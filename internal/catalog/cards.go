// Package catalog holds the immutable balance tables for every card, spell
// and tower the game knows about. The identifier sets are closed: anything
// not listed here is rejected at the deployment boundary, so the rest of the
// engine never has to re-validate a type string.
package catalog

// Speed is the movement class of a troop
type Speed string

const (
	SpeedFast   Speed = "FAST"
	SpeedMedium Speed = "MEDIUM"
	SpeedSlow   Speed = "SLOW"
)

// MoveInterval returns how many ticks pass between two moves of a troop in
// this movement class. Note that SLOW (15) moves more often than MEDIUM (20);
// the balance tables ship that way and gameplay depends on it.
func (s Speed) MoveInterval() int {
	switch s {
	case SpeedFast:
		return 10
	case SpeedMedium:
		return 20
	case SpeedSlow:
		return 15
	default:
		return 20
	}
}

// TargetType describes a category of entity a card can attack
type TargetType string

const (
	TargetAir       TargetType = "AIR"
	TargetGround    TargetType = "GROUND"
	TargetBuildings TargetType = "BUILDINGS"
)

// EntityType describes the category a troop itself belongs to
type EntityType string

const (
	EntityGround   EntityType = "GROUND"
	EntityAir      EntityType = "AIR"
	EntityBuilding EntityType = "BUILDING"
)

// CardStats holds the balance values for one deployable troop card.
// HitSpeed is the attack cadence in seconds; Range and Health are in grid
// units and hit points at level 1.
type CardStats struct {
	Cost     int
	Health   int
	Damage   int
	HitSpeed float64
	Range    int
	Speed    Speed
	Type     EntityType
	Targets  []TargetType
}

// cardStats maps the closed set of card identifiers to their stats
var cardStats = map[string]CardStats{
	"ARCHER": {
		Cost:     3,
		Health:   125,
		Damage:   33,
		HitSpeed: 1.2,
		Range:    5,
		Speed:    SpeedMedium,
		Type:     EntityGround,
		Targets:  []TargetType{TargetAir, TargetGround},
	},
	"GIANT": {
		Cost:     5,
		Health:   2000,
		Damage:   126,
		HitSpeed: 1.5,
		Range:    1,
		Speed:    SpeedSlow,
		Type:     EntityGround,
		Targets:  []TargetType{TargetBuildings},
	},
	"BARBARIAN": {
		Cost:     5,
		Health:   300,
		Damage:   75,
		HitSpeed: 1.5,
		Range:    1,
		Speed:    SpeedMedium,
		Type:     EntityGround,
		Targets:  []TargetType{TargetGround},
	},
}

// Card looks up the stats for a card identifier. The second return value is
// false for identifiers outside the closed card set.
func Card(cardType string) (CardStats, bool) {
	stats, ok := cardStats[cardType]
	return stats, ok
}

// CardTypes returns the closed set of card identifiers
func CardTypes() []string {
	types := make([]string, 0, len(cardStats))
	for t := range cardStats {
		types = append(types, t)
	}
	return types
}

// IsCard reports whether cardType names a deployable troop card
func IsCard(cardType string) bool {
	_, ok := cardStats[cardType]
	return ok
}
