package client

import (
	"fmt"
	"strconv"
	"strings"

	"clash-arena/internal/game"
)

// ParseCommand interprets one line of console input and issues the matching
// protocol message.
func (c *Client) ParseCommand(input string) error {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	switch strings.ToLower(parts[0]) {
	case "help":
		printHelp()
		return nil

	case "login":
		if len(parts) != 3 {
			return fmt.Errorf("usage: login <username> <password>")
		}
		return c.Login(parts[1], parts[2])

	case "start":
		if len(parts) != 2 {
			return fmt.Errorf("usage: start <deckId>")
		}
		return c.StartMatch(parts[1])

	case "place":
		if len(parts) != 4 && len(parts) != 5 {
			return fmt.Errorf("usage: place <card> <x> <y> [owner]")
		}
		x, err := strconv.Atoi(parts[2])
		if err != nil {
			return fmt.Errorf("invalid x coordinate: %s", parts[2])
		}
		y, err := strconv.Atoi(parts[3])
		if err != nil {
			return fmt.Errorf("invalid y coordinate: %s", parts[3])
		}
		owner := string(game.OwnerPlayer)
		if len(parts) == 5 {
			owner = strings.ToLower(parts[4])
		}
		cardType := strings.ToUpper(parts[1])
		_, err = c.PlaceCard(cardType, owner, game.Position{X: x, Y: y}, 0)
		return err

	case "ping":
		return c.Ping()

	case "sync":
		return c.SyncRequest()

	case "quit", "exit":
		return c.Disconnect()

	default:
		return fmt.Errorf("unknown command: %s (try 'help')", parts[0])
	}
}

// printHelp lists the console commands
func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  login <username> <password>   log in (creates the account on first use)")
	fmt.Println("  start <deckId>                start a match with one of your decks")
	fmt.Println("  place <card> <x> <y> [owner]  deploy a card or cast a spell")
	fmt.Println("  ping                          measure round trip time")
	fmt.Println("  sync                          print the server's authoritative tick")
	fmt.Println("  quit                          disconnect and exit")
}
