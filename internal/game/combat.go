package game

import "math"

// hitIntervalTicks converts an attack cadence in seconds to a tick interval
func hitIntervalTicks(hitSpeed float64) int {
	interval := int(math.Round(hitSpeed * TickRate))
	if interval < 1 {
		interval = 1
	}
	return interval
}

// handleCombat assigns targets and applies damage. Acquisition only runs for
// entities without a target; an acquired lock is never re-validated for
// range and is broken only by the target's death. Towers use the same rule
// but only ever target troops.
func (s *Simulation) handleCombat(events *[]Event) {
	for _, t := range s.troops.all() {
		if t.TargetID == "" {
			if targetID, ok := s.findTroopTarget(t); ok {
				t.TargetID = targetID
				t.Status = StatusFight
				*events = append(*events, Event{
					Type: EventTarget,
					Tick: s.tick,
					Payload: EventPayload{
						EntityID: t.ID,
						TargetID: targetID,
					},
				})
			}
		}

		if t.TargetID != "" && s.tick%hitIntervalTicks(t.HitSpeed) == 0 {
			s.dealDamage(t.TargetID, t.Damage, events)
		}
	}

	for _, tower := range s.towers {
		if tower.TargetID == "" {
			if targetID, ok := s.findTowerTarget(tower); ok {
				tower.TargetID = targetID
			}
		}

		if tower.TargetID != "" && s.tick%hitIntervalTicks(tower.HitSpeed) == 0 {
			s.dealDamage(tower.TargetID, tower.Damage, events)
		}
	}
}

// findTroopTarget scans opposing troops, then opposing towers, and returns
// the in-range target with minimum Euclidean distance. Ties resolve to the
// first minimum in scan order, which is fixed because the registry iterates
// in insertion order.
func (s *Simulation) findTroopTarget(t *Troop) (string, bool) {
	var nearestID string
	minDist := math.Inf(1)

	for _, other := range s.troops.all() {
		if other.Owner == t.Owner {
			continue
		}
		dist := Distance(t.Position, other.Position)
		if dist <= float64(t.Range) && dist < minDist {
			nearestID = other.ID
			minDist = dist
		}
	}

	for _, tower := range s.towers {
		if tower.Owner == t.Owner {
			continue
		}
		dist := Distance(t.Position, tower.Position)
		if dist <= float64(t.Range) && dist < minDist {
			nearestID = tower.ID
			minDist = dist
		}
	}

	return nearestID, nearestID != ""
}

// findTowerTarget scans opposing troops only; towers never attack towers
func (s *Simulation) findTowerTarget(tower *Tower) (string, bool) {
	var nearestID string
	minDist := math.Inf(1)

	for _, t := range s.troops.all() {
		if t.Owner == tower.Owner {
			continue
		}
		dist := Distance(tower.Position, t.Position)
		if dist <= float64(tower.Range) && dist < minDist {
			nearestID = t.ID
			minDist = dist
		}
	}

	return nearestID, nearestID != ""
}

// dealDamage subtracts direct-attack damage from the target's health. Direct
// damage is deliberately not floor-clamped: health may go transiently
// negative until the death cleanup phase removes the entity. (Spell damage
// clamps at zero instead; see CastSpell.)
func (s *Simulation) dealDamage(targetID string, damage int, events *[]Event) {
	if troop := s.troops.get(targetID); troop != nil {
		troop.Health -= damage
		*events = append(*events, Event{
			Type:    EventDamage,
			Tick:    s.tick,
			Payload: EventPayload{EntityID: targetID, Damage: damage},
		})
		if troop.Health <= 0 {
			*events = append(*events, Event{
				Type:    EventDie,
				Tick:    s.tick,
				Payload: EventPayload{EntityID: targetID},
			})
		}
		return
	}

	for _, tower := range s.towers {
		if tower.ID != targetID {
			continue
		}
		tower.Health -= damage
		*events = append(*events, Event{
			Type:    EventDamage,
			Tick:    s.tick,
			Payload: EventPayload{EntityID: targetID, Damage: damage},
		})
		if tower.Health <= 0 {
			*events = append(*events, Event{
				Type:    EventDie,
				Tick:    s.tick,
				Payload: EventPayload{EntityID: targetID},
			})
		}
		return
	}
}
