package network

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"clash-arena/internal/game"
)

func TestCodecRoundTripOverWebsocket(t *testing.T) {
	t.Parallel()

	received := make(chan *Message, 1)
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		codec := NewCodec(conn)
		defer codec.Close()

		msg, err := codec.Receive()
		if err != nil {
			t.Errorf("server receive failed: %v", err)
			return
		}
		received <- msg

		if err := codec.Send(MessageTypePong, &PongPayload{ClientTime: 1, ServerTime: 2}); err != nil {
			t.Errorf("server send failed: %v", err)
		}
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	client := NewCodec(conn)
	defer client.Close()

	sent := &PlaceCardPayload{
		CardType:      "ARCHER",
		Owner:         "player",
		Position:      game.Position{X: 6, Y: 30},
		ClientTick:    12,
		IdempotencyID: "token-1",
	}
	if err := client.Send(MessageTypePlaceCard, sent); err != nil {
		t.Fatalf("client send failed: %v", err)
	}

	msg := <-received
	if msg.Type != MessageTypePlaceCard {
		t.Fatalf("message type = %s, want PLACE_CARD", msg.Type)
	}

	var got PlaceCardPayload
	if err := ParsePayload(msg, &got); err != nil {
		t.Fatalf("ParsePayload failed: %v", err)
	}
	if got != *sent {
		t.Fatalf("payload round trip mismatch: %+v != %+v", got, *sent)
	}

	reply, err := client.Receive()
	if err != nil {
		t.Fatalf("client receive failed: %v", err)
	}
	if reply.Type != MessageTypePong {
		t.Fatalf("reply type = %s, want PONG", reply.Type)
	}
	var pong PongPayload
	if err := ParsePayload(reply, &pong); err != nil {
		t.Fatalf("ParsePayload failed: %v", err)
	}
	if pong.ClientTime != 1 || pong.ServerTime != 2 {
		t.Fatalf("unexpected pong: %+v", pong)
	}
}

func TestMessageEnvelopeWireFormat(t *testing.T) {
	t.Parallel()

	payload, err := json.Marshal(&ErrorPayload{Message: "bad command"})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	data, err := json.Marshal(Message{Type: MessageTypeError, Payload: payload})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}

	want := `{"type":"ERROR","payload":{"message":"bad command"}}`
	if string(data) != want {
		t.Fatalf("wire envelope = %s, want %s", data, want)
	}

	var decoded Message
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	var errPayload ErrorPayload
	if err := ParsePayload(&decoded, &errPayload); err != nil {
		t.Fatalf("ParsePayload failed: %v", err)
	}
	if errPayload.Message != "bad command" {
		t.Fatalf("decoded message = %q", errPayload.Message)
	}
}
