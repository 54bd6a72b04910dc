// Package match owns the table of running simulations. Each match is one
// independently scheduled simulation instance; the manager holds exclusive
// ownership of every instance and is the only place a match is created,
// looked up or torn down.
package match

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"clash-arena/internal/game"
	"clash-arena/pkg/logger"
)

// Match pairs a running simulation with its bookkeeping
type Match struct {
	ID        string
	Sim       *game.Simulation
	DeckID    string
	StartedAt time.Time
}

// Manager is the owning registry of live matches, keyed by match id. Matches
// share no state, so the lock only guards the table itself.
type Manager struct {
	mu      sync.RWMutex
	matches map[string]*Match
}

// NewManager creates an empty match table
func NewManager() *Manager {
	return &Manager{
		matches: make(map[string]*Match),
	}
}

// Create starts a new simulation under a fresh match id. onUpdate receives
// every snapshot; onEnd fires once on victory, after which the match is
// removed from the table.
func (m *Manager) Create(deckID string, onUpdate func(game.Snapshot), onEnd func(game.Result)) *Match {
	sim := game.NewSimulation()
	sim.MatchID = uuid.New().String()

	mt := &Match{
		ID:        sim.MatchID,
		Sim:       sim,
		DeckID:    deckID,
		StartedAt: time.Now(),
	}

	m.mu.Lock()
	m.matches[mt.ID] = mt
	m.mu.Unlock()

	sim.Start(onUpdate, func(result game.Result) {
		if onEnd != nil {
			onEnd(result)
		}
		m.remove(mt.ID)
	})

	logger.Match.Info("created match %s (deck %s)", mt.ID, deckID)
	return mt
}

// Get looks up a live match by id
func (m *Manager) Get(id string) (*Match, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mt, ok := m.matches[id]
	return mt, ok
}

// Stop tears down a match explicitly: the scheduler halts and the match
// leaves the table.
func (m *Manager) Stop(id string) error {
	m.mu.Lock()
	mt, ok := m.matches[id]
	if ok {
		delete(m.matches, id)
	}
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("match %s not found", id)
	}

	mt.Sim.Stop()
	logger.Match.Info("stopped match %s", id)
	return nil
}

// StopAll tears down every live match, used on server shutdown
func (m *Manager) StopAll() {
	m.mu.Lock()
	matches := m.matches
	m.matches = make(map[string]*Match)
	m.mu.Unlock()

	for id, mt := range matches {
		mt.Sim.Stop()
		logger.Match.Info("stopped match %s", id)
	}
}

// Count returns the number of live matches
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.matches)
}

// remove drops an ended match from the table
func (m *Manager) remove(id string) {
	m.mu.Lock()
	delete(m.matches, id)
	m.mu.Unlock()
	logger.Match.Info("removed ended match %s", id)
}
