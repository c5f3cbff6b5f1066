package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"expert-session-be/internal/dto"
	"expert-session-be/internal/pkg/logger"
)

const broadcastBuffer = 256

type roomMessage struct {
	sessionId string
	data      []byte
}

// Hub groups connections into one room per session. Run owns membership;
// everything else talks to it through channels.
type Hub struct {
	// Registered clients: SessionId -> set of clients
	rooms map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	broadcast  chan roomMessage
	done       chan struct{}

	// Guards rooms for readers outside Run
	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan roomMessage, broadcastBuffer),
		done:       make(chan struct{}),
		logger:     log,
	}
}

// Run serves room membership until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for sessionId, room := range h.rooms {
				for client := range room {
					close(client.Send)
				}
				delete(h.rooms, sessionId)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			room, ok := h.rooms[client.SessionId]
			if !ok {
				room = make(map[*Client]struct{})
				h.rooms[client.SessionId] = room
			}
			room[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("SESSION_ROOM", "Client joined", map[string]interface{}{
				"session_id": client.SessionId,
				"user_id":    client.UserId,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.rooms[msg.sessionId] {
				select {
				case client.Send <- msg.data:
				default:
					h.logger.Warn("SESSION_ROOM", "Client send buffer full, dropping client", map[string]interface{}{
						"session_id": client.SessionId,
						"user_id":    client.UserId,
					})
					h.remove(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove must be called with mu held.
func (h *Hub) remove(client *Client) {
	room, ok := h.rooms[client.SessionId]
	if !ok {
		return
	}
	if _, ok := room[client]; !ok {
		return
	}
	delete(room, client)
	close(client.Send)
	if len(room) == 0 {
		delete(h.rooms, client.SessionId)
	}
	h.logger.Info("SESSION_ROOM", "Client left", map[string]interface{}{
		"session_id": client.SessionId,
		"user_id":    client.UserId,
	})
}

// Register adds client to its session room. After the hub has stopped the
// client's Send channel is closed right away.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.Send)
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// BroadcastToSession queues msg for every client in the room. It never
// blocks the caller; when the queue is full the message is dropped.
func (h *Hub) BroadcastToSession(sessionId string, msg *dto.MessageResponse) {
	data, err := json.Marshal(map[string]interface{}{
		"type": "message",
		"data": msg,
	})
	if err != nil {
		h.logger.Error("SESSION_ROOM", "Failed to encode message", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return
	}

	select {
	case h.broadcast <- roomMessage{sessionId: sessionId, data: data}:
	case <-h.done:
	default:
		h.logger.Warn("SESSION_ROOM", "Broadcast queue full, dropping message", map[string]interface{}{
			"session_id": sessionId,
			"message_id": msg.Id,
		})
	}
}

// RoomSize reports how many clients are connected to a session.
func (h *Hub) RoomSize(sessionId string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[sessionId])
}
