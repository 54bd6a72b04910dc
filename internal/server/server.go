// Package server terminates client websocket connections and maps inbound
// messages onto the match manager and the simulation core. The simulation
// never sees a raw connection: this layer validates commands and the core
// only re-checks what it must (unknown identifiers, elixir).
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"clash-arena/internal/match"
	"clash-arena/internal/network"
	"clash-arena/internal/persistence"
	"clash-arena/pkg/logger"
)

// Server is the arena websocket gateway
type Server struct {
	Host string
	Port int

	httpServer *http.Server
	upgrader   websocket.Upgrader
	clients    map[string]*Client
	clientsMux sync.Mutex
	auth       *AuthManager
	matches    *match.Manager
}

// Client represents one connected websocket client
type Client struct {
	ID       string
	Username string
	MatchID  string
	Codec    *network.Codec
	profile  *persistence.Profile
}

// NewServer creates a new gateway serving websocket clients at /ws
func NewServer(host string, port int, basePath string) *Server {
	return &Server{
		Host: host,
		Port: port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The transport trusts its own schema validation; origin policy
			// belongs to the deployment in front of this server.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*Client),
		auth:    NewAuthManager(basePath),
		matches: match.NewManager(),
	}
}

// Matches exposes the match table, used by tests driving the gateway
func (s *Server) Matches() *match.Manager {
	return s.matches
}

// Start begins serving websocket connections
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebsocket)

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	s.httpServer = &http.Server{Addr: addr, Handler: mux}

	logger.Server.Info("server starting on %s", addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Server.Error("http server error: %v", err)
		}
	}()

	return nil
}

// Stop shuts the gateway down: all matches are torn down and every client
// connection is closed.
func (s *Server) Stop() error {
	s.matches.StopAll()

	s.clientsMux.Lock()
	for _, client := range s.clients {
		client.Codec.Close()
	}
	s.clients = make(map[string]*Client)
	s.clientsMux.Unlock()

	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}

// handleWebsocket upgrades an http request and hands the connection to a
// per-client goroutine.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Server.Error("websocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		ID:    uuid.New().String(),
		Codec: network.NewCodec(conn),
	}

	s.clientsMux.Lock()
	s.clients[client.ID] = client
	s.clientsMux.Unlock()

	logger.Server.Info("client connected: %s from %s", client.ID, r.RemoteAddr)
	go s.handleClient(client)
}

// handleClient runs the receive loop for one connection. A disconnect does
// not stop the client's match: the simulation keeps advancing headless so a
// reconnecting viewer sees consistent state; teardown happens on victory or
// explicit server shutdown.
func (s *Server) handleClient(client *Client) {
	defer func() {
		s.clientsMux.Lock()
		delete(s.clients, client.ID)
		s.clientsMux.Unlock()

		if client.Username != "" {
			s.auth.UnregisterActiveUser(client.Username)
		}
		client.Codec.Close()

		if client.MatchID != "" {
			logger.Server.Info("client %s disconnected from match %s - keeping match alive for reconnection",
				client.ID, client.MatchID)
		} else {
			logger.Server.Info("client %s disconnected", client.ID)
		}
	}()

	for {
		msg, err := client.Codec.Receive()
		if err != nil {
			logger.Server.Debug("receive from client %s failed: %v", client.ID, err)
			return
		}

		if err := s.processMessage(client, msg); err != nil {
			logger.Server.Warn("error processing %s from client %s: %v", msg.Type, client.ID, err)
			s.sendError(client, err.Error())
		}
	}
}

// sendError delivers an ERROR payload, logging delivery failures only
func (s *Server) sendError(client *Client, message string) {
	if err := client.Codec.Send(network.MessageTypeError, &network.ErrorPayload{Message: message}); err != nil {
		logger.Server.Debug("failed to send error to client %s: %v", client.ID, err)
	}
}
