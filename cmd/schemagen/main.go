// Command schemagen emits the JSON schema for the wire protocol payloads.
// The document is written to docs/protocol.schema.json and is the machine
// readable contract for client implementations.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"clash-arena/internal/network"
)

// protocolDocument groups every payload type under its message type so one
// reflection pass produces the whole contract.
type protocolDocument struct {
	Login        network.LoginPayload        `json:"LOGIN"`
	StartMatch   network.StartMatchPayload   `json:"START_MATCH"`
	PlaceCard    network.PlaceCardPayload    `json:"PLACE_CARD"`
	Ping         network.PingPayload         `json:"PING"`
	AuthResult   network.AuthResultPayload   `json:"AUTH_RESULT"`
	MatchStarted network.MatchStartedPayload `json:"MATCH_STARTED"`
	GameUpdate   network.GameUpdatePayload   `json:"GAME_UPDATE"`
	CardPlaced   network.CardPlacedPayload   `json:"CARD_PLACED"`
	Error        network.ErrorPayload        `json:"ERROR"`
	Pong         network.PongPayload         `json:"PONG"`
	MatchEnded   network.MatchEndedPayload   `json:"MATCH_ENDED"`
	Sync         network.SyncPayload         `json:"SYNC"`
}

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "docs/protocol.schema.json", "path to write the JSON schema")
	flag.Parse()

	schema := buildSchema()

	if err := writeSchema(outPath, schema); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(protocolDocument))
	schema.Title = "Clash Arena Protocol"
	schema.Description = "Payload schemas for every message type exchanged between client and server"
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
