package ws

import (
	"encoding/json"
	"sync"

	"taskboard/internal/domain"
	"taskboard/internal/logger"
)

// Event types pushed to dashboard sockets.
const (
	EventTaskCreated   = "task.created"
	EventTaskCompleted = "task.completed"
)

type Event struct {
	Type   string       `json:"type"`
	Task   *domain.Task `json:"task,omitempty"`
	TaskID int64        `json:"task_id,omitempty"`
}

// Hub tracks the open dashboard sockets per user and fans events out to
// them. Delivery is best effort: a slow client gets dropped rather than
// blocking the writer, and a socket that raced past an event just renders
// slightly stale data until the next fetch.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]map[*Client]struct{}),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.UserID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.UserID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.UserID]
	if !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.UserID)
	}
}

// Notify pushes the event to every open socket of one user.
func (h *Hub) Notify(userID int64, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		logger.Error("ws event marshal failed", "type", ev.Type, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		select {
		case c.send <- payload:
		default:
			// client is not draining; let its pumps tear it down
			logger.Warn("ws client send buffer full", "user_id", userID)
		}
	}
}
