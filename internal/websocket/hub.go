package websocket

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/merlinjoyv/GlowUpAI/internal/advice"
	"github.com/merlinjoyv/GlowUpAI/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const maxFrameBytes = 64 << 10

type advisor interface {
	Reply(ctx context.Context, message string, history []models.ChatMessage) advice.Reply
}

// Hub serves the chat over WebSocket. Every text frame is a ChatRequest and
// gets exactly one ChatResponse (or error) frame back.
type Hub struct {
	mu          sync.Mutex
	connections map[*websocket.Conn]struct{}
	engine      advisor
	now         func() time.Time
}

func NewHub(engine advisor) *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]struct{}),
		engine:      engine,
		now:         time.Now,
	}
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	conn.SetReadLimit(maxFrameBytes)

	h.registerConnection(conn)
	defer h.unregisterConnection(conn)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var req models.ChatRequest
		if err := json.Unmarshal(data, &req); err != nil || req.Message == nil {
			if writeErr := conn.WriteJSON(models.ErrorResponse{Error: models.APIError{
				Code:    "VALIDATION_ERROR",
				Message: "Message is required",
			}}); writeErr != nil {
				return
			}
			continue
		}

		reply := h.engine.Reply(r.Context(), *req.Message, req.ChatHistory)
		resp := models.ChatResponse{
			Response:  reply.Text,
			Timestamp: h.now(),
			Status:    "success",
			Source:    string(reply.Source),
			Topic:     string(reply.Topic),
		}
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}

func (h *Hub) registerConnection(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.connections[conn] = struct{}{}
	log.Printf("WebSocket connected: %s (total: %d)", conn.RemoteAddr(), len(h.connections))
}

func (h *Hub) unregisterConnection(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn.Close()
	delete(h.connections, conn)
	log.Printf("WebSocket disconnected: %s", conn.RemoteAddr())
}

// Count returns the number of open connections.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.connections)
}

// Close sends a close frame to every open connection.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for conn := range h.connections {
		conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		conn.Close()
	}
}
