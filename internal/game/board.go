// Package game implements the authoritative battle simulation: the entity
// model, the fixed-rate tick pipeline, movement, combat, the elixir economy,
// deployment validation, victory detection and the per-tick snapshot.
package game

import "math"

// Grid dimensions and the fixed path geometry of the battlefield. Troops
// advance along the two lane columns and cross the midfield on the bridge
// row.
const (
	GridColumns = 24
	GridRows    = 39
	LeftLaneX   = 6
	RightLaneX  = 17
	BridgeY     = 6
)

// Position is an integer grid coordinate, x in [0,23] and y in [0,38]
type Position struct {
	X int `json:"x" jsonschema:"minimum=0,maximum=23"`
	Y int `json:"y" jsonschema:"minimum=0,maximum=38"`
}

// InBounds reports whether the position lies on the grid
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < GridColumns && p.Y >= 0 && p.Y < GridRows
}

// Clamp returns the position moved onto the grid if it lies outside
func (p Position) Clamp() Position {
	if p.X < 0 {
		p.X = 0
	}
	if p.X >= GridColumns {
		p.X = GridColumns - 1
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y >= GridRows {
		p.Y = GridRows - 1
	}
	return p
}

// Mirror flips a position to the other side's orientation:
// (x, y) -> (23-x, 38-y). Applying it twice returns the original position,
// which lets a command expressed in the submitter's own orientation land
// correctly on the shared absolute grid.
func Mirror(p Position) Position {
	return Position{
		X: GridColumns - 1 - p.X,
		Y: GridRows - 1 - p.Y,
	}
}

// OnMainPath reports whether the position is on a lane column or the bridge
// row
func OnMainPath(p Position) bool {
	return p.X == LeftLaneX || p.X == RightLaneX || p.Y == BridgeY
}

// Distance returns the Euclidean distance between two grid positions
func Distance(a, b Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
