package game

import (
	"testing"

	"clash-arena/internal/catalog"
)

func TestPlaceCardDeductsElixirAndSpawns(t *testing.T) {
	t.Parallel()

	s := NewSimulation()

	id, ok := s.PlaceCard("ARCHER", OwnerPlayer, Position{X: 6, Y: 30})
	if !ok || id == "" {
		t.Fatalf("placement failed: id=%q ok=%v", id, ok)
	}
	if got := s.elixir[OwnerPlayer]; got != 7 {
		t.Fatalf("elixir after ARCHER = %d, want 7", got)
	}

	troop := s.troops.get(id)
	if troop == nil {
		t.Fatal("placed troop not found in registry")
	}
	if troop.Position != (Position{X: 6, Y: 30}) {
		t.Fatalf("troop position = %v, want (6,30)", troop.Position)
	}
	if troop.Health != 125 || troop.Status != StatusWalk {
		t.Fatalf("unexpected troop state: hp=%d status=%s", troop.Health, troop.Status)
	}

	// The spawn event is queued and stamped with the tick that drains it.
	s.tick = 5
	events := s.drainPending()
	if len(events) != 1 || events[0].Type != EventSpawn {
		t.Fatalf("expected one spawn event, got %+v", events)
	}
	if events[0].Tick != 5 {
		t.Fatalf("spawn event tick = %d, want 5", events[0].Tick)
	}
	if events[0].Payload.EntityID != id || events[0].Payload.CardType != "ARCHER" {
		t.Fatalf("unexpected spawn payload: %+v", events[0].Payload)
	}
}

func TestPlaceCardRejectionsAreNoOps(t *testing.T) {
	t.Parallel()

	s := NewSimulation()

	if _, ok := s.PlaceCard("DRAGON", OwnerPlayer, Position{X: 6, Y: 30}); ok {
		t.Fatal("unknown card type must be rejected")
	}
	if got := s.elixir[OwnerPlayer]; got != ElixirMax {
		t.Fatalf("rejected placement changed elixir: %d", got)
	}

	// Drain the pool so a 5-cost GIANT no longer fits, then verify the
	// decline deducts nothing and creates nothing.
	s.elixir[OwnerPlayer] = 4
	if _, ok := s.PlaceCard("GIANT", OwnerPlayer, Position{X: 6, Y: 30}); ok {
		t.Fatal("placement must fail with insufficient elixir")
	}
	if got := s.elixir[OwnerPlayer]; got != 4 {
		t.Fatalf("failed placement deducted elixir: %d", got)
	}
	if s.troops.count() != 0 {
		t.Fatalf("failed placement created a troop")
	}
	if len(s.pending) != 0 {
		t.Fatal("failed placement queued an event")
	}
}

func TestPlaceCardMirrorsOpponentCommands(t *testing.T) {
	t.Parallel()

	s := NewSimulation()

	id, ok := s.PlaceCard("BARBARIAN", OwnerOpponent, Position{X: 6, Y: 30})
	if !ok {
		t.Fatal("opponent placement failed")
	}

	troop := s.troops.get(id)
	if troop.Position != (Position{X: 17, Y: 8}) {
		t.Fatalf("opponent troop at %v, want mirrored (17,8)", troop.Position)
	}
}

func TestPlaceCardRejectedAfterMatchEnd(t *testing.T) {
	t.Parallel()

	s := NewSimulation()
	s.ended = true

	if _, ok := s.PlaceCard("ARCHER", OwnerPlayer, Position{X: 6, Y: 30}); ok {
		t.Fatal("placement must be rejected once the match ended")
	}
	if s.CastSpell("FIREBALL", OwnerPlayer, Position{X: 6, Y: 30}) {
		t.Fatal("spells must be rejected once the match ended")
	}
}

func TestCastSpellDamagesAreaAndClampsAtZero(t *testing.T) {
	t.Parallel()

	s := NewSimulation()

	inside, _ := s.PlaceCard("BARBARIAN", OwnerPlayer, Position{X: 10, Y: 20})
	s.elixir[OwnerPlayer] = ElixirMax
	outside, _ := s.PlaceCard("BARBARIAN", OwnerPlayer, Position{X: 10, Y: 28})

	s.elixir[OwnerOpponent] = ElixirMax
	if !s.CastSpell("FIREBALL", OwnerOpponent, Position{X: 10, Y: 21}) {
		t.Fatal("spell cast failed")
	}
	if got := s.elixir[OwnerOpponent]; got != 6 {
		t.Fatalf("elixir after FIREBALL = %d, want 6", got)
	}

	// BARBARIAN has 300 hp; a 325-damage FIREBALL floors at zero rather than
	// going negative. Direct attacks behave differently, see the combat tests.
	if got := s.troops.get(inside).Health; got != 0 {
		t.Fatalf("troop in radius has %d hp, want 0", got)
	}
	if got := s.troops.get(outside).Health; got != 300 {
		t.Fatalf("troop outside radius has %d hp, want 300", got)
	}
}

func TestCastSpellDoesNotMirrorAndHitsTowers(t *testing.T) {
	t.Parallel()

	s := NewSimulation()

	// Spell coordinates are used verbatim for both sides. The opponent casts
	// at the player QUEEN at (3,35); with mirroring it would land near (20,3).
	if !s.CastSpell("FIREBALL", OwnerOpponent, Position{X: 3, Y: 35}) {
		t.Fatal("spell cast failed")
	}

	queenStats := catalog.Tower(catalog.TowerQueen)
	var hit, unhit *Tower
	for _, tower := range s.towers {
		if tower.Kind != catalog.TowerQueen {
			continue
		}
		switch tower.Position {
		case Position{X: 3, Y: 35}:
			hit = tower
		case Position{X: 20, Y: 3}:
			unhit = tower
		}
	}

	if hit == nil || hit.Health != queenStats.Health-325 {
		t.Fatalf("player QUEEN at (3,35) not damaged as expected: %+v", hit)
	}
	if unhit == nil || unhit.Health != queenStats.Health {
		t.Fatalf("opponent QUEEN at (20,3) must be untouched: %+v", unhit)
	}
}

func TestCastSpellRejectionsAreNoOps(t *testing.T) {
	t.Parallel()

	s := NewSimulation()

	if s.CastSpell("METEOR", OwnerPlayer, Position{X: 6, Y: 6}) {
		t.Fatal("unknown spell must be rejected")
	}

	s.elixir[OwnerPlayer] = 2
	if s.CastSpell("ARROWS", OwnerPlayer, Position{X: 6, Y: 6}) {
		t.Fatal("spell must fail with insufficient elixir")
	}
	if got := s.elixir[OwnerPlayer]; got != 2 {
		t.Fatalf("failed spell deducted elixir: %d", got)
	}
}
