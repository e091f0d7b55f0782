package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/merlinjoyv/GlowUpAI/internal/advice"
	"github.com/merlinjoyv/GlowUpAI/internal/models"
)

func dial(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestHub_ChatRoundTrip(t *testing.T) {
	h := NewHub(advice.NewEngine(advice.EngineConfig{}))
	conn := dial(t, h)

	msg := "Tell me about hairstyles"
	if err := conn.WriteJSON(models.ChatRequest{Message: &msg}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var resp models.ChatResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if resp.Response != advice.Template(advice.TopicHair) {
		t.Errorf("expected hair template, got %q", resp.Response)
	}
	if resp.Status != "success" || resp.Source != "fallback" || resp.Topic != "hair" {
		t.Errorf("unexpected response metadata %+v", resp)
	}
}

func TestHub_MissingMessage(t *testing.T) {
	h := NewHub(advice.NewEngine(advice.EngineConfig{}))
	conn := dial(t, h)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"chatHistory":[]}`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var resp models.ErrorResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if resp.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %q", resp.Error.Code)
	}

	// The connection stays usable after a bad frame.
	msg := ""
	if err := conn.WriteJSON(models.ChatRequest{Message: &msg}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	var ok models.ChatResponse
	if err := conn.ReadJSON(&ok); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if ok.Response != advice.Template(advice.TopicDefault) {
		t.Error("expected default template for empty message")
	}
}
