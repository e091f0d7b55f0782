package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/merlinjoyv/GlowUpAI/internal/models"
)

func newFakeOpenAI(t *testing.T, status int, body string, seen *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if seen != nil {
			json.NewDecoder(r.Body).Decode(seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIBackend_Complete(t *testing.T) {
	var seen map[string]any
	srv := newFakeOpenAI(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "Wear a navy blazer."}, "finish_reason": "stop"}]
	}`, &seen)

	b := NewOpenAIBackend("sk-test", srv.URL+"/v1", "gpt-3.5-turbo", 1000, 0.7)
	got, err := b.Complete(context.Background(), []models.ChatMessage{
		{Role: models.RoleSystem, Content: "be stylish"},
		{Role: models.RoleUser, Content: "interview outfit?"},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if got != "Wear a navy blazer." {
		t.Errorf("Expected reply text, got %q", got)
	}

	if seen["model"] != "gpt-3.5-turbo" {
		t.Errorf("Expected model gpt-3.5-turbo, got %v", seen["model"])
	}
	if seen["max_tokens"] != float64(1000) {
		t.Errorf("Expected max_tokens 1000, got %v", seen["max_tokens"])
	}
	msgs, _ := seen["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(msgs))
	}
	first, _ := msgs[0].(map[string]any)
	if first["role"] != "system" || first["content"] != "be stylish" {
		t.Errorf("Unexpected first message %v", first)
	}
}

func TestOpenAIBackend_NoChoices(t *testing.T) {
	srv := newFakeOpenAI(t, http.StatusOK, `{"id": "chatcmpl-2", "choices": []}`, nil)

	b := NewOpenAIBackend("sk-test", srv.URL+"/v1", "gpt-3.5-turbo", 100, 0.7)
	if _, err := b.Complete(context.Background(), []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}}); err == nil {
		t.Fatal("Expected error for empty choices")
	}
}

func TestOpenAIBackend_APIError(t *testing.T) {
	srv := newFakeOpenAI(t, http.StatusUnauthorized, `{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`, nil)

	b := NewOpenAIBackend("sk-bad", srv.URL+"/v1", "gpt-3.5-turbo", 100, 0.7)
	if _, err := b.Complete(context.Background(), []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}}); err == nil {
		t.Fatal("Expected error for 401 response")
	}
}
