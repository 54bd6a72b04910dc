package game

// handleMovement advances every troop that has no combat target and whose
// movement class is due this tick. A troop on a lane column or the bridge
// row walks the fixed path toward the enemy baseline; anywhere else it
// steers one cell toward the nearer lane column.
func (s *Simulation) handleMovement() {
	for _, t := range s.troops.all() {
		if t.TargetID != "" {
			continue
		}
		if s.tick%t.Speed.MoveInterval() != 0 {
			continue
		}
		t.Position = s.nextPosition(t)
		t.Status = StatusWalk
	}
}

// nextPosition evaluates the pathing rule for one eligible move
func (s *Simulation) nextPosition(t *Troop) Position {
	pos := t.Position

	if OnMainPath(pos) {
		// On the bridge row the troop steps sideways through the lane gap
		// instead of advancing.
		if pos.Y == BridgeY {
			if pos.X >= LeftLaneX && pos.X <= 11 {
				return Position{X: pos.X + 1, Y: pos.Y}.Clamp()
			}
			if pos.X >= 12 && pos.X <= RightLaneX {
				return Position{X: pos.X - 1, Y: pos.Y}.Clamp()
			}
		}
		if t.Owner == OwnerPlayer {
			return Position{X: pos.X, Y: pos.Y - 1}.Clamp()
		}
		return Position{X: pos.X, Y: pos.Y + 1}.Clamp()
	}

	// Off the path: one lateral step toward the nearer lane column. The
	// strict comparison defaults to the right lane.
	distLeft := abs(pos.X - LeftLaneX)
	distRight := abs(pos.X - RightLaneX)

	lane := RightLaneX
	if distLeft < distRight {
		lane = LeftLaneX
	}
	if pos.X < lane {
		pos.X++
	} else {
		pos.X--
	}
	return pos.Clamp()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
