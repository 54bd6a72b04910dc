package server

import (
	"errors"
	"fmt"
	"time"

	"clash-arena/internal/catalog"
	"clash-arena/internal/game"
	"clash-arena/internal/network"
	"clash-arena/pkg/logger"
)

// processMessage dispatches one inbound message. Errors returned here are
// reported to the client as ERROR messages by the receive loop.
func (s *Server) processMessage(client *Client, msg *network.Message) error {
	switch msg.Type {
	case network.MessageTypeLogin:
		return s.handleLogin(client, msg)
	case network.MessageTypeStartMatch:
		return s.handleStartMatch(client, msg)
	case network.MessageTypePlaceCard:
		return s.handlePlaceCard(client, msg)
	case network.MessageTypePing:
		return s.handlePing(client, msg)
	case network.MessageTypeSyncRequest:
		return s.handleSyncRequest(client)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// handleLogin authenticates the client and reports the account's decks. A
// failed login is answered with AUTH_RESULT rather than ERROR so the client
// can distinguish bad credentials from protocol faults.
func (s *Server) handleLogin(client *Client, msg *network.Message) error {
	var payload network.LoginPayload
	if err := network.ParsePayload(msg, &payload); err != nil {
		return err
	}

	profile, err := s.auth.Authenticate(payload.Username, payload.Password)
	if err != nil {
		return client.Codec.Send(network.MessageTypeAuthResult, &network.AuthResultPayload{
			Success: false,
			Message: err.Error(),
		})
	}

	if err := s.auth.RegisterActiveUser(payload.Username, client.ID); err != nil {
		return client.Codec.Send(network.MessageTypeAuthResult, &network.AuthResultPayload{
			Success: false,
			Message: err.Error(),
		})
	}

	client.Username = payload.Username
	client.profile = profile

	logger.Server.Info("client %s logged in as %s", client.ID, payload.Username)
	return client.Codec.Send(network.MessageTypeAuthResult, &network.AuthResultPayload{
		Success:  true,
		Message:  "login successful",
		PlayerID: profile.Username,
		Decks:    profile.DeckIDs(),
	})
}

// handleStartMatch starts a new match with one of the sender's decks, or
// reattaches the sender to their still-running match after a reconnect.
func (s *Server) handleStartMatch(client *Client, msg *network.Message) error {
	if client.profile == nil {
		return errors.New("not logged in")
	}

	var payload network.StartMatchPayload
	if err := network.ParsePayload(msg, &payload); err != nil {
		return err
	}

	if !client.profile.OwnsDeck(payload.DeckID) {
		return fmt.Errorf("deck %s not owned by %s", payload.DeckID, client.Username)
	}

	if client.MatchID != "" {
		if mt, ok := s.matches.Get(client.MatchID); ok {
			logger.Server.Info("client %s rejoining match %s", client.ID, mt.ID)
			return client.Codec.Send(network.MessageTypeMatchStarted, &network.MatchStartedPayload{
				MatchID: mt.ID,
			})
		}
		client.MatchID = ""
	}

	mt := s.matches.Create(payload.DeckID,
		func(snapshot game.Snapshot) {
			if err := client.Codec.Send(network.MessageTypeGameUpdate, &snapshot); err != nil {
				logger.Server.Debug("failed to send snapshot to client %s: %v", client.ID, err)
			}
		},
		func(result game.Result) {
			ended := &network.MatchEndedPayload{
				MatchID:  client.MatchID,
				Winner:   string(result.Winner),
				Reason:   result.Reason,
				Duration: result.Duration,
			}
			if err := client.Codec.Send(network.MessageTypeMatchEnded, ended); err != nil {
				logger.Server.Debug("failed to send match result to client %s: %v", client.ID, err)
			}
		})

	client.MatchID = mt.ID
	return client.Codec.Send(network.MessageTypeMatchStarted, &network.MatchStartedPayload{
		MatchID: mt.ID,
	})
}

// handlePlaceCard routes a deployment to the sender's simulation. Troop cards
// create an entity; spells resolve instantly and the acknowledgement carries
// no entity id.
func (s *Server) handlePlaceCard(client *Client, msg *network.Message) error {
	var payload network.PlaceCardPayload
	if err := network.ParsePayload(msg, &payload); err != nil {
		return err
	}

	mt, ok := s.matches.Get(client.MatchID)
	if !ok {
		return errors.New("no active match")
	}

	owner := game.Owner(payload.Owner)
	if owner != game.OwnerPlayer && owner != game.OwnerOpponent {
		return fmt.Errorf("invalid owner: %s", payload.Owner)
	}
	if !payload.Position.InBounds() {
		return fmt.Errorf("position (%d, %d) is off the grid", payload.Position.X, payload.Position.Y)
	}

	if catalog.IsSpell(payload.CardType) {
		if !mt.Sim.CastSpell(payload.CardType, owner, payload.Position) {
			return fmt.Errorf("could not cast %s", payload.CardType)
		}
		return client.Codec.Send(network.MessageTypeCardPlaced, &network.CardPlacedPayload{
			IdempotencyID: payload.IdempotencyID,
		})
	}

	entityID, placed := mt.Sim.PlaceCard(payload.CardType, owner, payload.Position)
	if !placed {
		return fmt.Errorf("could not place %s", payload.CardType)
	}
	return client.Codec.Send(network.MessageTypeCardPlaced, &network.CardPlacedPayload{
		IdempotencyID: payload.IdempotencyID,
		EntityID:      entityID,
	})
}

// handlePing answers with both clocks so the client can estimate latency
func (s *Server) handlePing(client *Client, msg *network.Message) error {
	var payload network.PingPayload
	if err := network.ParsePayload(msg, &payload); err != nil {
		return err
	}
	return client.Codec.Send(network.MessageTypePong, &network.PongPayload{
		ClientTime: payload.ClientTime,
		ServerTime: time.Now().UnixMilli(),
	})
}

// handleSyncRequest reports the authoritative tick. Per-entity corrections
// are a reserved mechanism; the list is always empty.
func (s *Server) handleSyncRequest(client *Client) error {
	tick := 0
	if mt, ok := s.matches.Get(client.MatchID); ok {
		tick = mt.Sim.Tick()
	}
	return client.Codec.Send(network.MessageTypeSync, &network.SyncPayload{
		AuthoritativeTick: tick,
		Corrections:       []network.Correction{},
	})
}
