// server/internal/socket/hub.go
package socket

import (
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub tracks the connected admin dashboard clients. New bookings are pushed
// to every connection so open dashboards update without polling.
type Hub struct {
	// clients maps a connection id to its websocket connection.
	clients map[string]*websocket.Conn
	// mu guards clients; connections register and drop from many goroutines.
	mu sync.RWMutex
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
	}
}

// Register adds a new client to the Hub.
func (h *Hub) Register(connID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[connID] = conn
	zap.S().Infof("WebSocket client registered: %s", connID)
}

// Unregister removes a client from the Hub.
func (h *Hub) Unregister(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[connID]; ok {
		delete(h.clients, connID)
		zap.S().Infof("WebSocket client unregistered: %s", connID)
	}
}

// Broadcast sends message to every connected client. Write failures are
// logged per client; a dead connection is cleaned up by its own read loop.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for connID, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			zap.S().Warnf("Failed to push message to websocket client %s: %v", connID, err)
		}
	}
}
