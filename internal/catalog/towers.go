package catalog

// TowerKind identifies one of the two tower types. The KING tower is the
// match-ending structure; each side also has two supporting QUEEN towers.
type TowerKind string

const (
	TowerKing  TowerKind = "KING"
	TowerQueen TowerKind = "QUEEN"
)

// TowerStats holds the balance values for one tower kind
type TowerStats struct {
	Health   int
	Damage   int
	Range    int
	HitSpeed float64
}

var towerStats = map[TowerKind]TowerStats{
	TowerKing: {
		Health:   2400,
		Damage:   50,
		Range:    7,
		HitSpeed: 1.0,
	},
	TowerQueen: {
		Health:   1400,
		Damage:   50,
		Range:    8,
		HitSpeed: 0.8,
	},
}

// Tower returns the stats for a tower kind
func Tower(kind TowerKind) TowerStats {
	return towerStats[kind]
}
