// Package network defines the transport-agnostic message set exchanged
// between client and server, plus the websocket envelope codec. Payloads are
// validated against docs/protocol.schema.json, generated from these structs
// by cmd/schemagen.
package network

import "clash-arena/internal/game"

// MessageType defines the types of messages that can be exchanged
type MessageType string

// Client to Server message types
const (
	MessageTypeLogin       MessageType = "LOGIN"
	MessageTypeStartMatch  MessageType = "START_MATCH"
	MessageTypePlaceCard   MessageType = "PLACE_CARD"
	MessageTypePing        MessageType = "PING"
	MessageTypeSyncRequest MessageType = "SYNC_REQUEST"
)

// Server to Client message types
const (
	MessageTypeAuthResult   MessageType = "AUTH_RESULT"
	MessageTypeMatchStarted MessageType = "MATCH_STARTED"
	MessageTypeGameUpdate   MessageType = "GAME_UPDATE"
	MessageTypeCardPlaced   MessageType = "CARD_PLACED"
	MessageTypeError        MessageType = "ERROR"
	MessageTypePong         MessageType = "PONG"
	MessageTypeMatchEnded   MessageType = "MATCH_ENDED"
	MessageTypeSync         MessageType = "SYNC"
)

// ----- Client to Server message payloads -----

// LoginPayload carries the credentials for a login request. Accounts are
// created on first login.
type LoginPayload struct {
	Username string `json:"username" jsonschema:"minLength=1"`
	Password string `json:"password" jsonschema:"minLength=1"`
}

// StartMatchPayload requests a new match (or a rejoin of the sender's live
// match) using one of the sender's decks.
type StartMatchPayload struct {
	DeckID string `json:"deckId" jsonschema:"format=uuid"`
}

// PlaceCardPayload asks the server to deploy a card or cast a spell. The
// position is expressed in the submitter's own orientation. IdempotencyID is
// an opaque dedup token echoed back in CARD_PLACED; the simulation core does
// not interpret it.
type PlaceCardPayload struct {
	CardType      string        `json:"cardType"`
	Owner         string        `json:"owner" jsonschema:"enum=player,enum=opponent"`
	Position      game.Position `json:"position"`
	ClientTick    int           `json:"clientTick"`
	IdempotencyID string        `json:"idempotencyId" jsonschema:"format=uuid"`
}

// PingPayload carries the client clock for latency measurement
type PingPayload struct {
	ClientTime int64 `json:"clientTime"`
}

// ----- Server to Client message payloads -----

// AuthResultPayload reports the outcome of a login attempt. Decks lists the
// ids of the decks the account owns, usable in START_MATCH.
type AuthResultPayload struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message,omitempty"`
	PlayerID string   `json:"playerId,omitempty"`
	Decks    []string `json:"decks,omitempty"`
}

// MatchStartedPayload confirms a match is running for the sender
type MatchStartedPayload struct {
	MatchID string `json:"matchId"`
}

// GameUpdatePayload is the per-tick full-state snapshot; the body is the
// simulation core's own snapshot model.
type GameUpdatePayload = game.Snapshot

// CardPlacedPayload acknowledges a successful PLACE_CARD. EntityID is empty
// when the card was a spell, which leaves no persistent entity behind.
type CardPlacedPayload struct {
	IdempotencyID string `json:"idempotencyId"`
	EntityID      string `json:"entityId,omitempty"`
}

// ErrorPayload reports an invalid or unprocessable command
type ErrorPayload struct {
	Message string `json:"message"`
}

// PongPayload answers a PING with both clocks
type PongPayload struct {
	ClientTime int64 `json:"clientTime"`
	ServerTime int64 `json:"serverTime"`
}

// MatchEndedPayload reports the terminal state of a match. Duration is in
// seconds.
type MatchEndedPayload struct {
	MatchID  string `json:"matchId"`
	Winner   string `json:"winner"`
	Reason   string `json:"reason"`
	Duration int    `json:"duration"`
}

// Correction is a reserved per-entity state correction. The reconciliation
// mechanism is a protocol stub: the server currently never produces
// corrections.
type Correction struct {
	EntityID        string        `json:"entityId"`
	CorrectPosition game.Position `json:"correctPosition"`
	CorrectHealth   int           `json:"correctHealth"`
}

// SyncPayload answers a SYNC_REQUEST with the authoritative tick
type SyncPayload struct {
	AuthoritativeTick int          `json:"authoritativeTick"`
	Corrections       []Correction `json:"corrections"`
}
