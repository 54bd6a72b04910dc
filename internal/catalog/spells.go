package catalog

// SpellStats holds the balance values for one castable spell. Radius is in
// grid units; Duration is zero for the instant spells currently in the set.
type SpellStats struct {
	Cost     int
	Damage   int
	Radius   float64
	Duration float64
	Targets  []TargetType
}

// spellStats maps the closed set of spell identifiers to their stats
var spellStats = map[string]SpellStats{
	"FIREBALL": {
		Cost:    4,
		Damage:  325,
		Radius:  2.5,
		Targets: []TargetType{TargetAir, TargetGround},
	},
	"ARROWS": {
		Cost:    3,
		Damage:  115,
		Radius:  4,
		Targets: []TargetType{TargetAir, TargetGround},
	},
}

// Spell looks up the stats for a spell identifier. The second return value is
// false for identifiers outside the closed spell set.
func Spell(spellType string) (SpellStats, bool) {
	stats, ok := spellStats[spellType]
	return stats, ok
}

// IsSpell reports whether cardType names a castable spell
func IsSpell(cardType string) bool {
	_, ok := spellStats[cardType]
	return ok
}
