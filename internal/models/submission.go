package models

import (
	"time"

	"github.com/google/uuid"
)

// Submission is a contact form entry from the landing page.
type Submission struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Timestamp string    `json:"timestamp"` // client supplied, stored as-is
	CreatedAt time.Time `json:"created_at"`
}

type SubmitUserRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Timestamp string `json:"timestamp"`
}

type SubmitUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
