package models

import "time"

// Role of a message author in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    Role   `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the fashion chat endpoint.
// Message is a pointer so a missing field can be told apart from "".
type ChatRequest struct {
	Message     *string       `json:"message"`
	ChatHistory []ChatMessage `json:"chatHistory"`
	UserID      string        `json:"userId,omitempty"`
}

// ChatResponse is the reply from the fashion assistant.
type ChatResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Source    string    `json:"source,omitempty"` // "backend" | "fallback"
	Topic     string    `json:"topic,omitempty"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	AIEnabled bool      `json:"ai_enabled"`
	Provider  string    `json:"provider"`
}
