package websocket

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	// In production, adjust the CheckOrigin function to allow only trusted origins.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ActivityEvent is broadcast to every connected client when an evaluation
// moves through the pipeline.
type ActivityEvent struct {
	Type   string    `json:"type"`
	IdeaID string    `json:"ideaId,omitempty"`
	Title  string    `json:"title,omitempty"`
	At     time.Time `json:"at"`
}

// ActivityFeed fans evaluation lifecycle events out to websocket subscribers.
// A nil feed is safe to broadcast on, so callers never need to guard.
type ActivityFeed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	logger  *zap.Logger
}

func NewActivityFeed(logger *zap.Logger) *ActivityFeed {
	return &ActivityFeed{
		clients: make(map[*websocket.Conn]struct{}),
		logger:  logger,
	}
}

// Handler upgrades the connection and registers the client until it drops.
func (f *ActivityFeed) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		f.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	f.mu.Lock()
	f.clients[conn] = struct{}{}
	f.mu.Unlock()

	// Drain reads so pings and close frames are processed. The feed is
	// one-way; client messages are discarded.
	go func() {
		defer f.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends the event to every connected client, dropping any whose
// write fails.
func (f *ActivityFeed) Broadcast(event ActivityEvent) {
	if f == nil {
		return
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.clients {
		if err := conn.WriteJSON(event); err != nil {
			f.logger.Debug("dropping stale activity subscriber", zap.Error(err))
			conn.Close()
			delete(f.clients, conn)
		}
	}
}

func (f *ActivityFeed) remove(conn *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.clients[conn]; ok {
		conn.Close()
		delete(f.clients, conn)
	}
}
