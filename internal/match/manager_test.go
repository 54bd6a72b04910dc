package match

import (
	"testing"

	"clash-arena/internal/game"
)

func TestManagerCreateAndGet(t *testing.T) {
	t.Parallel()

	m := NewManager()
	defer m.StopAll()

	mt := m.Create("deck-1", nil, nil)
	if mt.ID == "" {
		t.Fatal("match created without an id")
	}
	if mt.Sim == nil || mt.Sim.MatchID != mt.ID {
		t.Fatal("match id not shared with its simulation")
	}
	if mt.DeckID != "deck-1" {
		t.Fatalf("deck id = %q, want deck-1", mt.DeckID)
	}

	got, ok := m.Get(mt.ID)
	if !ok || got != mt {
		t.Fatal("Get did not return the created match")
	}
	if _, ok := m.Get("no-such-match"); ok {
		t.Fatal("Get returned a match for an unknown id")
	}
	if m.Count() != 1 {
		t.Fatalf("Count = %d, want 1", m.Count())
	}
}

func TestManagerStop(t *testing.T) {
	t.Parallel()

	m := NewManager()
	mt := m.Create("deck-1", nil, nil)

	if err := m.Stop(mt.ID); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if _, ok := m.Get(mt.ID); ok {
		t.Fatal("stopped match still in the table")
	}
	if err := m.Stop(mt.ID); err == nil {
		t.Fatal("stopping a missing match must fail")
	}
}

func TestManagerStopAll(t *testing.T) {
	t.Parallel()

	m := NewManager()
	m.Create("deck-1", nil, nil)
	m.Create("deck-2", nil, nil)

	m.StopAll()
	if m.Count() != 0 {
		t.Fatalf("Count after StopAll = %d, want 0", m.Count())
	}
}

func TestManagerRemoveDropsEndedMatch(t *testing.T) {
	t.Parallel()

	m := NewManager()
	defer m.StopAll()

	mt := m.Create("deck-1", nil, nil)
	m.remove(mt.ID)

	if _, ok := m.Get(mt.ID); ok {
		t.Fatal("removed match still in the table")
	}
	mt.Sim.Stop()
}

func TestManagerSnapshotCallbackDelivers(t *testing.T) {
	t.Parallel()

	m := NewManager()
	defer m.StopAll()

	updates := make(chan game.Snapshot, 64)
	m.Create("deck-1", func(snap game.Snapshot) {
		select {
		case updates <- snap:
		default:
		}
	}, nil)

	snap := <-updates
	if len(snap.Towers) != 6 {
		t.Fatalf("snapshot towers = %d, want 6", len(snap.Towers))
	}
}
