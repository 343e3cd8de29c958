// Package ws streams a running fixpoint computation to WebSocket clients
// watching a given game id (§6.5): one JSON message per iteration, rather
// than waiting for the whole size log.
package ws

import (
	"sync"

	"go.uber.org/zap"

	"github.com/HelmerNylen/mkbsc/internal/logger"
)

// IterationMessage is broadcast once per fixpoint iteration.
type IterationMessage struct {
	Iteration int    `json:"iteration"`
	Size      int    `json:"size"`
	Status    string `json:"status"`
}

type broadcast struct {
	gameID  string
	message IterationMessage
}

// Hub fans out iteration messages to every connection currently watching
// a given game id.
type Hub struct {
	connections     map[*Connection]bool
	gameConnections map[string]map[*Connection]bool

	Register   chan *Connection
	Unregister chan *Connection
	Broadcast  chan broadcast

	mu     sync.RWMutex
	logger *zap.Logger
}

// NewHub returns a Hub with no active connections.
func NewHub() *Hub {
	return &Hub{
		connections:     make(map[*Connection]bool),
		gameConnections: make(map[string]map[*Connection]bool),
		Register:        make(chan *Connection),
		Unregister:      make(chan *Connection),
		Broadcast:       make(chan broadcast),
		logger:          logger.Get(),
	}
}

// Run processes registrations, unregistrations, and broadcasts until
// done is closed.
func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			h.closeAll()
			return
		case c := <-h.Register:
			h.register(c)
		case c := <-h.Unregister:
			h.unregister(c)
		case b := <-h.Broadcast:
			h.broadcastToGame(b.gameID, b.message)
		}
	}
}

// BroadcastToGame queues message for every connection watching gameID.
func (h *Hub) BroadcastToGame(gameID string, message IterationMessage) {
	h.Broadcast <- broadcast{gameID: gameID, message: message}
}

func (h *Hub) register(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c] = true
	if h.gameConnections[c.gameID] == nil {
		h.gameConnections[c.gameID] = make(map[*Connection]bool)
	}
	h.gameConnections[c.gameID][c] = true
	h.logger.Debug("websocket connection registered", zap.String("game_id", c.gameID))
}

func (h *Hub) unregister(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.connections[c]; !ok {
		return
	}
	delete(h.connections, c)
	close(c.send)
	if conns, ok := h.gameConnections[c.gameID]; ok {
		delete(conns, c)
		if len(conns) == 0 {
			delete(h.gameConnections, c.gameID)
		}
	}
	h.logger.Debug("websocket connection unregistered", zap.String("game_id", c.gameID))
}

func (h *Hub) broadcastToGame(gameID string, message IterationMessage) {
	h.mu.RLock()
	conns := h.gameConnections[gameID]
	h.mu.RUnlock()
	for c := range conns {
		c.send <- message
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.connections {
		close(c.send)
		c.conn.Close()
	}
}
