package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/merlinjoyv/GlowUpAI/internal/advice"
	"github.com/merlinjoyv/GlowUpAI/internal/models"
)

type advisor interface {
	Reply(ctx context.Context, message string, history []models.ChatMessage) advice.Reply
}

type ChatHandler struct {
	engine advisor
	now    func() time.Time
}

func NewChatHandler(engine advisor) *ChatHandler {
	return &ChatHandler{
		engine: engine,
		now:    time.Now,
	}
}

// FashionChat answers POST /api/fashion-chat.
func (h *ChatHandler) FashionChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.Message == nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}

	writeJSON(w, http.StatusOK, h.answer(r.Context(), req))
}

func (h *ChatHandler) answer(ctx context.Context, req models.ChatRequest) models.ChatResponse {
	log.Printf("Received fashion query: %s...", preview(*req.Message, 50))

	reply := h.engine.Reply(ctx, *req.Message, req.ChatHistory)

	return models.ChatResponse{
		Response:  reply.Text,
		Timestamp: h.now(),
		Status:    "success",
		Source:    string(reply.Source),
		Topic:     string(reply.Topic),
	}
}

// preview cuts s to at most n runes for logging.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
