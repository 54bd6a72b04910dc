// Package client is a websocket client library for the arena server: it
// frames protocol messages, dispatches inbound messages to registered
// handlers and offers one helper per client-to-server message.
package client

import (
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"clash-arena/internal/game"
	"clash-arena/internal/network"
	"clash-arena/pkg/logger"
)

// MessageHandler is a function that handles one type of server message
type MessageHandler func(msg *network.Message) error

// Client talks to one arena server over a websocket connection
type Client struct {
	Host     string
	Port     int
	Username string

	codec           *network.Codec
	messageHandlers map[network.MessageType]MessageHandler
	handlersMutex   sync.RWMutex
	connected       bool
	disconnectChan  chan struct{}
	disconnectOnce  sync.Once
}

// NewClient creates a client for the given server address
func NewClient(host string, port int) *Client {
	return &Client{
		Host:            host,
		Port:            port,
		messageHandlers: make(map[network.MessageType]MessageHandler),
		disconnectChan:  make(chan struct{}),
	}
}

// Connect dials the server's websocket endpoint and starts the receive loop
func (c *Client) Connect() error {
	if c.connected {
		return fmt.Errorf("already connected to server")
	}

	u := url.URL{
		Scheme: "ws",
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/ws",
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server at %s: %w", u.String(), err)
	}

	c.codec = network.NewCodec(conn)
	c.connected = true

	go c.receiveMessages()
	return nil
}

// Disconnect closes the connection
func (c *Client) Disconnect() error {
	if !c.connected {
		return nil
	}

	err := c.codec.Close()
	c.connected = false
	c.signalDisconnect()
	return err
}

// RegisterHandler registers a handler for a specific message type
func (c *Client) RegisterHandler(msgType network.MessageType, handler MessageHandler) {
	c.handlersMutex.Lock()
	defer c.handlersMutex.Unlock()
	c.messageHandlers[msgType] = handler
}

// RemoveHandler removes a handler for a specific message type
func (c *Client) RemoveHandler(msgType network.MessageType) {
	c.handlersMutex.Lock()
	defer c.handlersMutex.Unlock()
	delete(c.messageHandlers, msgType)
}

// Send sends a message to the server
func (c *Client) Send(msgType network.MessageType, payload interface{}) error {
	if !c.connected {
		return fmt.Errorf("not connected to server")
	}
	return c.codec.Send(msgType, payload)
}

// IsConnected returns whether the client is connected to the server
func (c *Client) IsConnected() bool {
	return c.connected
}

// WaitForDisconnect blocks until the connection is gone
func (c *Client) WaitForDisconnect() {
	<-c.disconnectChan
}

// Login sends the client's credentials. The account is created server-side
// on first login.
func (c *Client) Login(username, password string) error {
	c.Username = username
	return c.Send(network.MessageTypeLogin, &network.LoginPayload{
		Username: username,
		Password: password,
	})
}

// StartMatch requests a new match (or a rejoin) with one of this account's
// decks.
func (c *Client) StartMatch(deckID string) error {
	if c.Username == "" {
		return fmt.Errorf("must be logged in to start a match")
	}
	return c.Send(network.MessageTypeStartMatch, &network.StartMatchPayload{
		DeckID: deckID,
	})
}

// PlaceCard submits a card or spell deployment at the given position,
// expressed in the owner side's own orientation. The generated idempotency
// id is returned so the caller can match the CARD_PLACED acknowledgement.
func (c *Client) PlaceCard(cardType string, owner string, pos game.Position, clientTick int) (string, error) {
	idempotencyID := uuid.New().String()
	err := c.Send(network.MessageTypePlaceCard, &network.PlaceCardPayload{
		CardType:      cardType,
		Owner:         owner,
		Position:      pos,
		ClientTick:    clientTick,
		IdempotencyID: idempotencyID,
	})
	return idempotencyID, err
}

// Ping sends the local clock for a latency probe
func (c *Client) Ping() error {
	return c.Send(network.MessageTypePing, &network.PingPayload{
		ClientTime: time.Now().UnixMilli(),
	})
}

// SyncRequest asks the server for its authoritative tick
func (c *Client) SyncRequest() error {
	return c.Send(network.MessageTypeSyncRequest, nil)
}

// receiveMessages reads server messages until the connection drops and
// dispatches each to its registered handler.
func (c *Client) receiveMessages() {
	defer func() {
		c.connected = false
		c.signalDisconnect()
	}()

	for {
		msg, err := c.codec.Receive()
		if err != nil {
			return
		}
		c.dispatch(msg)
	}
}

// dispatch routes a message to its handler, falling back to logging
func (c *Client) dispatch(msg *network.Message) {
	c.handlersMutex.RLock()
	handler, exists := c.messageHandlers[msg.Type]
	c.handlersMutex.RUnlock()

	if !exists {
		if msg.Type == network.MessageTypeError {
			var errorPayload network.ErrorPayload
			if err := network.ParsePayload(msg, &errorPayload); err == nil {
				logger.Client.Warn("server error: %s", errorPayload.Message)
				return
			}
		}
		logger.Client.Debug("no handler for message type %s", msg.Type)
		return
	}

	if err := handler(msg); err != nil {
		logger.Client.Warn("error handling %s: %v", msg.Type, err)
	}
}

func (c *Client) signalDisconnect() {
	c.disconnectOnce.Do(func() {
		close(c.disconnectChan)
	})
}
