package ws

import (
	"sync"

	"rps_game/internal/logger"
)

// Hub tracks live connections per session so that deleting a session can
// drop its sockets.
type Hub struct {
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.SessionID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.SessionID] = set
	}
	set[c] = struct{}{}
	logger.Debug("ws client registered", "session_id", c.SessionID, "connections", len(set))
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.SessionID]
	if !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.SessionID)
	}
}

// Connections returns how many sockets are open for sessionID.
func (h *Hub) Connections(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

// CloseSession closes every connection bound to sessionID.
func (h *Hub) CloseSession(sessionID string) {
	h.mu.RLock()
	var list []*Client
	for c := range h.clients[sessionID] {
		list = append(list, c)
	}
	h.mu.RUnlock()

	for _, c := range list {
		c.Close()
	}
}
