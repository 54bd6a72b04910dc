package game

// handleElixir grants each side one elixir every elixirRegenTicks ticks,
// capped at ElixirMax. The grant interval is shared bookkeeping: both sides
// regenerate on the same tick.
func (s *Simulation) handleElixir(events *[]Event) {
	if s.tick-s.lastElixirTick < elixirRegenTicks {
		return
	}

	for _, owner := range []Owner{OwnerPlayer, OwnerOpponent} {
		if s.elixir[owner] >= ElixirMax {
			continue
		}
		s.elixir[owner]++
		*events = append(*events, Event{
			Type:    EventElixir,
			Tick:    s.tick,
			Payload: EventPayload{Owner: owner},
		})
	}

	s.lastElixirTick = s.tick
}
