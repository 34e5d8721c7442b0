package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// Response DTOs

type ContactMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactMessageListResponse struct {
	Messages []ContactMessageResponse `json:"messages"`
	Total    int64                    `json:"total"`
}

// ContactInfoResponse is the center's public contact card shown next to the
// contact form.
type ContactInfoResponse struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}
