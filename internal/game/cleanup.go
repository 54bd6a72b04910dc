package game

// removeDead drops every troop and tower whose health reached zero. Removal
// clears the target id of every other entity that was locked onto the dead
// one and resets those troops to WALK, making them eligible to move and
// reacquire on the next tick.
func (s *Simulation) removeDead() {
	for _, t := range s.troops.all() {
		if t.Health > 0 {
			continue
		}
		s.troops.remove(t.ID)
		s.clearTargetsOf(t.ID)
	}

	alive := make([]*Tower, 0, len(s.towers))
	for _, tower := range s.towers {
		if tower.Health > 0 {
			alive = append(alive, tower)
			continue
		}
		s.clearTargetsOf(tower.ID)
	}
	s.towers = alive
}

// clearTargetsOf breaks every lock pointing at the removed entity
func (s *Simulation) clearTargetsOf(id string) {
	for _, t := range s.troops.all() {
		if t.TargetID == id {
			t.TargetID = ""
			t.Status = StatusWalk
		}
	}
	for _, tower := range s.towers {
		if tower.TargetID == id {
			tower.TargetID = ""
		}
	}
}
