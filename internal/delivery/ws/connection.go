package ws

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/HelmerNylen/mkbsc/internal/fixpoint"
	"github.com/HelmerNylen/mkbsc/internal/logger"
	"github.com/HelmerNylen/mkbsc/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Connection is one client watching a single game's fixpoint progress.
type Connection struct {
	conn   *websocket.Conn
	send   chan IterationMessage
	gameID string
}

func (c *Connection) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			logger.Get().Debug("websocket write failed", zap.Error(err))
			return
		}
	}
	c.conn.Close()
}

// ServeFixpoint upgrades the request to a WebSocket and streams one
// message per fixpoint iteration for the game named by the {id} path
// variable, bounded by limit iterations.
func ServeFixpoint(hub *Hub, s *store.Store, limit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		g, err := s.Get(id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Get().Error("websocket upgrade failed", zap.Error(err))
			return
		}

		c := &Connection{conn: conn, send: make(chan IterationMessage, 16), gameID: id}
		hub.Register <- c
		go c.writePump()

		result, err := fixpoint.IterateUntilIsomorphic(g, limit, fixpoint.WithProgress(
			func(iteration, size int, status fixpoint.Status) {
				hub.BroadcastToGame(id, IterationMessage{Iteration: iteration, Size: size, Status: status.String()})
			},
		))
		if err != nil {
			logger.Get().Error("fixpoint run failed", zap.String("game_id", id), zap.Error(err))
		} else {
			final := result.Games[len(result.Games)-1]
			_ = s.Replace(id, final)
		}

		hub.Unregister <- c
	}
}
