package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/merlinjoyv/GlowUpAI/internal/models"
)

type submissionStore interface {
	Save(ctx context.Context, s *models.Submission) error
	List(ctx context.Context, limit int) ([]models.Submission, error)
}

type submissionQueue interface {
	Enqueue(ctx context.Context, s *models.Submission) error
}

type SubmissionHandler struct {
	store submissionStore
	queue submissionQueue // nil saves synchronously
	now   func() time.Time
}

func NewSubmissionHandler(store submissionStore, queue submissionQueue) *SubmissionHandler {
	return &SubmissionHandler{
		store: store,
		queue: queue,
		now:   time.Now,
	}
}

// SubmitUser answers POST /submit-user.
func (h *SubmissionHandler) SubmitUser(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	// Missing fields are stored as empty cells.
	sub := &models.Submission{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Timestamp: req.Timestamp,
		CreatedAt: h.now(),
	}

	var err error
	if h.queue != nil {
		err = h.queue.Enqueue(r.Context(), sub)
	} else {
		err = h.store.Save(r.Context(), sub)
	}
	if err != nil {
		log.Printf("❌ Failed to save submission %s: %v", sub.ID, err)
		writeJSON(w, http.StatusInternalServerError, models.SubmitUserResponse{
			Success: false,
			Message: "Could not save your details. Please try again.",
		})
		return
	}

	log.Printf("✅ Submission received: %s", sub.ID)
	writeJSON(w, http.StatusOK, models.SubmitUserResponse{
		Success: true,
		Message: "Data saved successfully!",
	})
}

// List answers GET /api/v1/submissions for admins.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 1000 {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "limit must be between 1 and 1000", r))
			return
		}
		limit = n
	}

	subs, err := h.store.List(r.Context(), limit)
	if err != nil {
		log.Printf("Failed to list submissions: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to list submissions", r))
		return
	}
	if subs == nil {
		subs = []models.Submission{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"submissions": subs,
		"count":       len(subs),
	})
}
