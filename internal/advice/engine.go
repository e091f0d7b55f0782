package advice

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/merlinjoyv/GlowUpAI/internal/models"
)

// DefaultBackendTimeout bounds a single backend call.
const DefaultBackendTimeout = 30 * time.Second

// FashionInstruction is the system message sent ahead of every conversation.
const FashionInstruction = `You are an expert AI Fashion Specialist with extensive knowledge in:
- Outfit coordination and styling for all occasions
- Makeup techniques and beauty advice
- Hair styling and care
- Jewelry and accessories coordination
- Color theory and matching
- Body type specific styling
- Seasonal fashion trends
- Footwear selection
- Fashion for different age groups and lifestyles

Provide detailed, practical, and personalized fashion advice. Always give multiple options and explain your reasoning. Be encouraging and help boost confidence. Format your responses clearly with sections for different aspects (outfits, accessories, makeup, etc.) when relevant.`

// Backend is a generative text client.
type Backend interface {
	Complete(ctx context.Context, messages []models.ChatMessage) (string, error)
}

// BackendError wraps any failure of the generative call.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

var (
	errNoBackend  = errors.New("no backend client configured")
	errEmptyReply = errors.New("backend returned empty text")
)

// EngineConfig is built once at startup and not modified afterwards.
type EngineConfig struct {
	BackendAvailable bool
	Backend          Backend
	Instruction      string
	Timeout          time.Duration
}

// Source tells which path produced a reply.
type Source string

const (
	SourceBackend  Source = "backend"
	SourceFallback Source = "fallback"
)

// Reply is the outcome of a single Respond call.
type Reply struct {
	Text   string
	Source Source
	Topic  Topic // set only for fallback replies
}

// Engine produces fashion advice, preferring the generative backend and
// falling back to the topic catalog. It keeps no state between calls.
type Engine struct {
	cfg EngineConfig
}

func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Instruction == "" {
		cfg.Instruction = FashionInstruction
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultBackendTimeout
	}
	return &Engine{cfg: cfg}
}

// BackendAvailable reports whether the engine will try the backend first.
func (e *Engine) BackendAvailable() bool {
	return e.cfg.BackendAvailable
}

// Respond returns advice text for message. It never fails.
func (e *Engine) Respond(ctx context.Context, message string, history []models.ChatMessage) string {
	return e.Reply(ctx, message, history).Text
}

// Reply is Respond plus the path that produced the text.
func (e *Engine) Reply(ctx context.Context, message string, history []models.ChatMessage) Reply {
	if e.cfg.BackendAvailable {
		res := e.generate(ctx, message, history)
		if res.err == nil {
			return Reply{Text: res.text, Source: SourceBackend}
		}
		log.Printf("⚠️  %v, using fallback", res.err)
	}
	return Fallback(message)
}

// Fallback answers from the catalog without touching any backend.
func Fallback(message string) Reply {
	topic := Classify(message)
	return Reply{Text: Template(topic), Source: SourceFallback, Topic: topic}
}

// backendResult is either text or a *BackendError, never both.
type backendResult struct {
	text string
	err  *BackendError
}

func (e *Engine) generate(ctx context.Context, message string, history []models.ChatMessage) backendResult {
	if e.cfg.Backend == nil {
		return backendResult{err: &BackendError{Op: "complete", Err: errNoBackend}}
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	window := BuildContextWindow(e.cfg.Instruction, history, message)

	// Buffered so the goroutine can finish after a timeout.
	done := make(chan backendResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- backendResult{err: &BackendError{Op: "complete", Err: fmt.Errorf("panic: %v", r)}}
			}
		}()

		text, err := e.cfg.Backend.Complete(ctx, window)
		switch {
		case err != nil:
			done <- backendResult{err: &BackendError{Op: "complete", Err: err}}
		case strings.TrimSpace(text) == "":
			done <- backendResult{err: &BackendError{Op: "complete", Err: errEmptyReply}}
		default:
			done <- backendResult{text: text}
		}
	}()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		return backendResult{err: &BackendError{Op: "complete", Err: ctx.Err()}}
	}
}
