package game

import (
	"sync"
	"time"

	"clash-arena/pkg/logger"
)

// Timing and economy constants for the fixed-rate loop
const (
	// TickRate is the number of simulation ticks per second
	TickRate = 30
	// TickInterval is the real-time period between scheduler firings
	TickInterval = 33 * time.Millisecond
	// ElixirMax caps each side's elixir pool
	ElixirMax = 10
	// elixirRegenTicks is the tick interval between elixir grants (~0.7s)
	elixirRegenTicks = 21
)

// Result describes how a match ended
type Result struct {
	Winner   Owner  `json:"winner"`
	Reason   string `json:"reason"`
	Duration int    `json:"duration"`
}

// Simulation is the authoritative state of one match and the scheduler that
// advances it. All state mutation is serialized through mu: the tick pipeline
// holds it for a whole tick, and externally submitted deployments take it
// between ticks, so no pipeline phase ever observes a half-applied command.
// One Simulation exists per match and shares nothing with other matches.
type Simulation struct {
	MatchID string

	mu             sync.Mutex
	tick           int
	troops         *registry
	towers         []*Tower
	elixir         map[Owner]int
	lastElixirTick int
	pending        []Event
	ended          bool
	result         *Result

	onUpdate func(Snapshot)
	onEnd    func(Result)

	startTime time.Time
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// NewSimulation creates a fresh match state: no troops, three towers per
// side, both elixir pools full.
func NewSimulation() *Simulation {
	return &Simulation{
		troops: newRegistry(),
		towers: initialTowers(),
		elixir: map[Owner]int{
			OwnerPlayer:   ElixirMax,
			OwnerOpponent: ElixirMax,
		},
		startTime: time.Now(),
		stopCh:    make(chan struct{}),
	}
}

// Start begins the fixed-rate loop. onUpdate receives one snapshot per tick
// (and one immediately, for the initial state); onEnd fires once when a KING
// tower falls. Both callbacks are invoked outside the state lock.
func (s *Simulation) Start(onUpdate func(Snapshot), onEnd func(Result)) {
	s.onUpdate = onUpdate
	s.onEnd = onEnd

	logger.Game.Info("match %s: starting simulation at %d ticks/s", s.MatchID, TickRate)

	s.mu.Lock()
	initial := s.buildSnapshot(nil)
	s.mu.Unlock()
	if s.onUpdate != nil {
		s.onUpdate(initial)
	}

	go s.run()
}

// Stop halts further scheduler firings. It is idempotent; a stopped
// simulation never emits another snapshot or event.
func (s *Simulation) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		logger.Game.Info("match %s: simulation stopped", s.MatchID)
	})
}

// run drives the tick loop. The ticker fires at a fixed period with no
// catch-up: a tick whose processing overruns the period simply delays the
// next one.
func (s *Simulation) run() {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.safeStep()
		}
	}
}

// safeStep runs one tick and keeps the match alive if the pipeline panics;
// the next scheduled tick still runs.
func (s *Simulation) safeStep() {
	defer func() {
		if r := recover(); r != nil {
			logger.Game.Error("match %s: recovered from tick panic: %v", s.MatchID, r)
		}
	}()
	s.Step()
}

// Step advances the simulation by exactly one tick and delivers the
// resulting snapshot or match result. It is exported so a test harness can
// drive the pipeline without the real-time scheduler.
func (s *Simulation) Step() {
	snapshot, result := s.advance()
	if snapshot != nil && s.onUpdate != nil {
		s.onUpdate(*snapshot)
	}
	if result != nil {
		s.Stop()
		if s.onEnd != nil {
			s.onEnd(*result)
		}
	}
}

// advance runs the ordered tick pipeline: movement, combat, elixir
// regeneration, death cleanup, victory check, snapshot. On the terminal tick
// the match result replaces the snapshot.
func (s *Simulation) advance() (*Snapshot, *Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return nil, nil
	}

	s.tick++
	events := s.drainPending()

	s.handleMovement()
	s.handleCombat(&events)
	s.handleElixir(&events)
	s.removeDead()

	if winner, reason, over := s.checkVictory(); over {
		s.ended = true
		res := Result{
			Winner:   winner,
			Reason:   reason,
			Duration: int(time.Since(s.startTime).Seconds()),
		}
		s.result = &res
		logger.Game.Info("match %s: ended, winner=%s (%s)", s.MatchID, winner, reason)
		return nil, &res
	}

	snapshot := s.buildSnapshot(events)
	return &snapshot, nil
}

// drainPending collects events queued between ticks (spawns from the
// deployment service) and stamps them with the current tick.
func (s *Simulation) drainPending() []Event {
	if len(s.pending) == 0 {
		return nil
	}
	events := make([]Event, 0, len(s.pending))
	for _, ev := range s.pending {
		ev.Tick = s.tick
		events = append(events, ev)
	}
	s.pending = s.pending[:0]
	return events
}

// Tick returns the current authoritative tick
func (s *Simulation) Tick() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick
}

// Ended returns the match result once the match has reached its terminal
// state.
func (s *Simulation) Ended() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// Elixir returns one side's current elixir
func (s *Simulation) Elixir(owner Owner) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elixir[owner]
}
