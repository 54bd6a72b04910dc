// Package persistence stores player profiles and their decks as JSON files.
// Match history is deliberately not persisted.
package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Profile is the persistent record of one player account. Decks maps a deck
// id to the list of card and spell identifiers it contains.
type Profile struct {
	Username       string              `json:"username"`
	HashedPassword string              `json:"hashedPassword"`
	Decks          map[string][]string `json:"decks"`
}

// starterCards is the deck every new account begins with
var starterCards = []string{"ARCHER", "GIANT", "BARBARIAN", "FIREBALL", "ARROWS"}

// NewProfile creates a profile with a generated starter deck
func NewProfile(username, hashedPassword string) *Profile {
	return &Profile{
		Username:       username,
		HashedPassword: hashedPassword,
		Decks: map[string][]string{
			uuid.New().String(): append([]string(nil), starterCards...),
		},
	}
}

// DeckIDs returns the ids of the decks this profile owns
func (p *Profile) DeckIDs() []string {
	ids := make([]string, 0, len(p.Decks))
	for id := range p.Decks {
		ids = append(ids, id)
	}
	return ids
}

// OwnsDeck reports whether the profile owns the given deck id
func (p *Profile) OwnsDeck(deckID string) bool {
	_, ok := p.Decks[deckID]
	return ok
}

// profilePath returns the on-disk location of a player's profile file
func profilePath(basePath, username string) string {
	return filepath.Join(basePath, "data", "players", fmt.Sprintf("%s.json", username))
}

// SaveProfile writes a player's profile to its JSON file
func SaveProfile(basePath string, profile *Profile) error {
	dirPath := filepath.Join(basePath, "data", "players")
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create players directory: %w", err)
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if err := os.WriteFile(profilePath(basePath, profile.Username), data, 0644); err != nil {
		return fmt.Errorf("failed to save profile file: %w", err)
	}
	return nil
}

// LoadProfile reads a player's profile from its JSON file. A missing file is
// not an error: it returns nil to indicate the account does not exist yet.
func LoadProfile(basePath, username string) (*Profile, error) {
	data, err := os.ReadFile(profilePath(basePath, username))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile file: %w", err)
	}
	return &profile, nil
}
