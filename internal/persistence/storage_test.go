package persistence

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewProfileGetsStarterDeck(t *testing.T) {
	t.Parallel()

	profile := NewProfile("alice", "hashed")
	if profile.Username != "alice" || profile.HashedPassword != "hashed" {
		t.Fatalf("unexpected profile fields: %+v", profile)
	}

	ids := profile.DeckIDs()
	if len(ids) != 1 {
		t.Fatalf("new profile has %d decks, want 1", len(ids))
	}
	if !profile.OwnsDeck(ids[0]) {
		t.Fatal("profile does not own its starter deck")
	}
	if profile.OwnsDeck("other-deck") {
		t.Fatal("profile claims a deck it does not own")
	}

	cards := profile.Decks[ids[0]]
	if len(cards) != 5 {
		t.Fatalf("starter deck has %d entries, want 5", len(cards))
	}
}

func TestSaveAndLoadProfileRoundTrip(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	profile := NewProfile("bob", "secret-hash")

	if err := SaveProfile(base, profile); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "data", "players", "bob.json")); err != nil {
		t.Fatalf("profile file missing: %v", err)
	}

	loaded, err := LoadProfile(base, "bob")
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadProfile returned nil for an existing profile")
	}
	if loaded.Username != profile.Username || loaded.HashedPassword != profile.HashedPassword {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
	if len(loaded.Decks) != len(profile.Decks) {
		t.Fatalf("deck count mismatch: %d != %d", len(loaded.Decks), len(profile.Decks))
	}
}

func TestLoadProfileMissingIsNotAnError(t *testing.T) {
	t.Parallel()

	profile, err := LoadProfile(t.TempDir(), "nobody")
	if err != nil {
		t.Fatalf("missing profile returned an error: %v", err)
	}
	if profile != nil {
		t.Fatalf("missing profile returned data: %+v", profile)
	}
}
