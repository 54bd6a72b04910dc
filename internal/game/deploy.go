package game

import (
	"github.com/google/uuid"

	"clash-arena/internal/catalog"
	"clash-arena/pkg/logger"
)

// PlaceCard validates and executes a card deployment. An unknown card type
// or insufficient elixir is a no-op: nothing is deducted and no entity is
// created. On success the cost is deducted atomically with troop creation
// and the new entity id is returned.
//
// Commands from the opponent side arrive in that side's own orientation and
// are mirrored onto the shared absolute grid before placement.
func (s *Simulation) PlaceCard(cardType string, owner Owner, pos Position) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return "", false
	}

	stats, ok := catalog.Card(cardType)
	if !ok {
		logger.Game.Warn("match %s: unknown card type %q", s.MatchID, cardType)
		return "", false
	}

	if s.elixir[owner] < stats.Cost {
		logger.Game.Warn("match %s: not enough elixir for %s: %d < %d",
			s.MatchID, cardType, s.elixir[owner], stats.Cost)
		return "", false
	}

	s.elixir[owner] -= stats.Cost

	if owner == OwnerOpponent {
		pos = Mirror(pos)
	}
	pos = pos.Clamp()

	troop := &Troop{
		ID:        uuid.New().String(),
		Type:      cardType,
		Owner:     owner,
		Position:  pos,
		Health:    stats.Health,
		MaxHealth: stats.Health,
		Status:    StatusWalk,
		Speed:     stats.Speed,
		Range:     stats.Range,
		Damage:    stats.Damage,
		HitSpeed:  stats.HitSpeed,
		Targets:   stats.Targets,
	}
	s.troops.add(troop)

	spawnPos := pos
	s.pending = append(s.pending, Event{
		Type: EventSpawn,
		Payload: EventPayload{
			EntityID: troop.ID,
			CardType: cardType,
			Owner:    owner,
			Position: &spawnPos,
		},
	})

	logger.Game.Info("match %s: spawned %s for %s at (%d, %d)",
		s.MatchID, cardType, owner, pos.X, pos.Y)
	return troop.ID, true
}

// CastSpell validates and executes an instantaneous area spell. Unknown
// spell types and insufficient elixir decline without mutating anything.
// Every troop and tower within the spell's radius of the target point takes
// the spell's damage regardless of side, floored at zero health; no
// persistent entity is created.
func (s *Simulation) CastSpell(spellType string, owner Owner, pos Position) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return false
	}

	stats, ok := catalog.Spell(spellType)
	if !ok {
		logger.Game.Warn("match %s: unknown spell type %q", s.MatchID, spellType)
		return false
	}

	if s.elixir[owner] < stats.Cost {
		logger.Game.Warn("match %s: not enough elixir for spell %s: %d < %d",
			s.MatchID, spellType, s.elixir[owner], stats.Cost)
		return false
	}

	s.elixir[owner] -= stats.Cost

	for _, t := range s.troops.all() {
		if Distance(t.Position, pos) <= stats.Radius {
			t.Health = max(0, t.Health-stats.Damage)
		}
	}
	for _, tower := range s.towers {
		if Distance(tower.Position, pos) <= stats.Radius {
			tower.Health = max(0, tower.Health-stats.Damage)
		}
	}

	logger.Game.Info("match %s: spell %s cast by %s at (%d, %d)",
		s.MatchID, spellType, owner, pos.X, pos.Y)
	return true
}
