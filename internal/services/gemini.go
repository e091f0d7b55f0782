package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/merlinjoyv/GlowUpAI/internal/models"
)

// GeminiBackend answers through a Gemini chat session.
type GeminiBackend struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiBackend(ctx context.Context, apiKey, modelName string, maxTokens int, temperature float32) (*GeminiBackend, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(int32(maxTokens))

	return &GeminiBackend{client: client, model: model}, nil
}

func (b *GeminiBackend) Close() {
	b.client.Close()
}

func (b *GeminiBackend) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	system, history, last := toGeminiContents(messages)
	if last == nil {
		return "", fmt.Errorf("no user message to send")
	}

	// GenerativeModel is shared, so the per-call instruction goes on a copy.
	model := *b.model
	model.SystemInstruction = system

	cs := model.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, last.Parts...)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return extractText(resp), nil
}

// toGeminiContents splits the window into the system instruction, the prior
// turns and the message to send. Gemini only knows "user" and "model".
func toGeminiContents(messages []models.ChatMessage) (system *genai.Content, history []*genai.Content, last *genai.Content) {
	var systemParts []string
	var turns []*genai.Content

	for _, m := range messages {
		switch m.Role {
		case models.RoleSystem:
			systemParts = append(systemParts, m.Content)
		case models.RoleAssistant:
			turns = append(turns, &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(m.Content)}})
		default:
			turns = append(turns, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(m.Content)}})
		}
	}

	if len(systemParts) > 0 {
		system = genai.NewUserContent(genai.Text(strings.Join(systemParts, "\n\n")))
	}
	if len(turns) == 0 {
		return system, nil, nil
	}
	return system, turns[:len(turns)-1], turns[len(turns)-1]
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
