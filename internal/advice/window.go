package advice

import "github.com/merlinjoyv/GlowUpAI/internal/models"

// HistoryWindow is how many prior turns are sent to the backend.
const HistoryWindow = 10

// BuildContextWindow assembles the messages submitted to a generative
// backend: the instruction, the most recent HistoryWindow turns in their
// original order and the current user message.
func BuildContextWindow(instruction string, history []models.ChatMessage, current string) []models.ChatMessage {
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	messages := make([]models.ChatMessage, 0, len(history)+2)
	messages = append(messages, models.ChatMessage{Role: models.RoleSystem, Content: instruction})

	for _, h := range history {
		role := h.Role
		if role == "" {
			role = models.RoleUser
		}
		messages = append(messages, models.ChatMessage{Role: role, Content: h.Content})
	}

	return append(messages, models.ChatMessage{Role: models.RoleUser, Content: current})
}
