package client

import (
	"fmt"
	"strings"
	"time"

	"clash-arena/internal/game"
	"clash-arena/internal/network"
)

// SetupDefaultHandlers registers the console handlers used by the command
// line client. Snapshots arrive thirty times a second; only one per second
// is rendered so the terminal stays readable.
func (c *Client) SetupDefaultHandlers() {
	c.RegisterHandler(network.MessageTypeAuthResult, func(msg *network.Message) error {
		var payload network.AuthResultPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return fmt.Errorf("failed to parse auth result: %w", err)
		}

		if payload.Success {
			fmt.Printf("Authentication successful. Welcome, %s!\n", c.Username)
			fmt.Printf("Your decks: %s\n", strings.Join(payload.Decks, ", "))
		} else {
			fmt.Printf("Authentication failed: %s\n", payload.Message)
		}
		return nil
	})

	c.RegisterHandler(network.MessageTypeMatchStarted, func(msg *network.Message) error {
		var payload network.MatchStartedPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return fmt.Errorf("failed to parse match start: %w", err)
		}

		fmt.Printf("\nMatch started!\nMatch ID: %s\n", payload.MatchID)
		return nil
	})

	c.RegisterHandler(network.MessageTypeGameUpdate, func(msg *network.Message) error {
		var snapshot game.Snapshot
		if err := network.ParsePayload(msg, &snapshot); err != nil {
			return fmt.Errorf("failed to parse game update: %w", err)
		}

		if snapshot.Tick%game.TickRate == 0 {
			printSnapshot(&snapshot)
		}
		return nil
	})

	c.RegisterHandler(network.MessageTypeCardPlaced, func(msg *network.Message) error {
		var payload network.CardPlacedPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return fmt.Errorf("failed to parse placement ack: %w", err)
		}

		if payload.EntityID != "" {
			fmt.Printf("Card placed (entity %s)\n", payload.EntityID)
		} else {
			fmt.Println("Spell cast")
		}
		return nil
	})

	c.RegisterHandler(network.MessageTypeMatchEnded, func(msg *network.Message) error {
		var payload network.MatchEndedPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return fmt.Errorf("failed to parse match result: %w", err)
		}

		fmt.Println("\nMatch over!")
		fmt.Printf("Winner: %s\n", payload.Winner)
		fmt.Printf("Reason: %s\n", payload.Reason)
		fmt.Printf("Duration: %ds\n", payload.Duration)
		return nil
	})

	c.RegisterHandler(network.MessageTypePong, func(msg *network.Message) error {
		var payload network.PongPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return fmt.Errorf("failed to parse pong: %w", err)
		}

		rtt := time.Now().UnixMilli() - payload.ClientTime
		fmt.Printf("Pong: round trip %dms\n", rtt)
		return nil
	})

	c.RegisterHandler(network.MessageTypeSync, func(msg *network.Message) error {
		var payload network.SyncPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return fmt.Errorf("failed to parse sync: %w", err)
		}

		fmt.Printf("Server tick: %d\n", payload.AuthoritativeTick)
		return nil
	})

	c.RegisterHandler(network.MessageTypeError, func(msg *network.Message) error {
		var payload network.ErrorPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return fmt.Errorf("failed to parse error: %w", err)
		}

		fmt.Printf("Server error: %s\n", payload.Message)
		return nil
	})
}

// printSnapshot renders a one-screen summary of the match state
func printSnapshot(snapshot *game.Snapshot) {
	fmt.Printf("\n--- Tick %d ---\n", snapshot.Tick)
	fmt.Printf("Elixir: you %d | opponent %d\n",
		snapshot.Players.Player.Elixir, snapshot.Players.Opponent.Elixir)

	fmt.Println("Towers:")
	for _, tower := range snapshot.Towers {
		fmt.Printf("  %-6s %-8s (%2d,%2d) %d/%d HP\n",
			tower.Kind, tower.Owner, tower.Position.X, tower.Position.Y,
			tower.Health, tower.MaxHealth)
	}

	if len(snapshot.Entities) > 0 {
		fmt.Println("Troops:")
		for _, e := range snapshot.Entities {
			fmt.Printf("  %-10s %-8s (%2d,%2d) %d/%d HP [%s]\n",
				e.Type, e.Owner, e.Position.X, e.Position.Y,
				e.Health, e.MaxHealth, e.Status)
		}
	}

	for _, ev := range snapshot.Events {
		fmt.Printf("  event: %s %s\n", ev.Type, describeEvent(ev))
	}
}

// describeEvent compacts an event payload into one readable fragment
func describeEvent(ev game.Event) string {
	p := ev.Payload
	switch ev.Type {
	case game.EventSpawn:
		if p.Position == nil {
			return fmt.Sprintf("%s %s", p.Owner, p.CardType)
		}
		return fmt.Sprintf("%s %s at (%d,%d)", p.Owner, p.CardType, p.Position.X, p.Position.Y)
	case game.EventDamage:
		return fmt.Sprintf("%s took %d from %s", shortID(p.TargetID), p.Damage, shortID(p.EntityID))
	case game.EventDie:
		return shortID(p.EntityID)
	case game.EventTarget:
		return fmt.Sprintf("%s -> %s", shortID(p.EntityID), shortID(p.TargetID))
	case game.EventElixir:
		return string(p.Owner)
	default:
		return ""
	}
}

// shortID trims a uuid down to its first segment for display
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
