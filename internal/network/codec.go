package network

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// writeWait bounds how long a single message write may block
const writeWait = 10 * time.Second

// Message is the envelope for all wire messages
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Codec frames messages over one websocket connection. Writes are serialized
// with a mutex because both the per-connection read loop and the simulation's
// snapshot callback send through the same connection.
type Codec struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// NewCodec creates a codec for the given websocket connection
func NewCodec(conn *websocket.Conn) *Codec {
	return &Codec{conn: conn}
}

// Send encodes a Message and writes it to the connection
func (c *Codec) Send(msgType MessageType, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	msg := Message{Type: msgType, Payload: data}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// Receive reads the next Message from the connection
func (c *Codec) Receive() (*Message, error) {
	var msg Message
	if err := c.conn.ReadJSON(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Close closes the underlying connection
func (c *Codec) Close() error {
	return c.conn.Close()
}

// ParsePayload decodes a message's raw payload into the target type
func ParsePayload(msg *Message, target interface{}) error {
	if err := json.Unmarshal(msg.Payload, target); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
