package game

import "clash-arena/internal/catalog"

// victoryReason is the single match-ending reason this core produces
const victoryReason = "King Tower destroyed"

// checkVictory runs after death cleanup: a side whose KING tower is gone (or
// somehow still present at zero health) loses immediately.
func (s *Simulation) checkVictory() (Owner, string, bool) {
	for _, owner := range []Owner{OwnerPlayer, OwnerOpponent} {
		king := s.kingOf(owner)
		if king == nil || king.Health <= 0 {
			return owner.Other(), victoryReason, true
		}
	}
	return "", "", false
}

// kingOf returns a side's KING tower, or nil once it has been destroyed
func (s *Simulation) kingOf(owner Owner) *Tower {
	for _, tower := range s.towers {
		if tower.Owner == owner && tower.Kind == catalog.TowerKing {
			return tower
		}
	}
	return nil
}
