package dto

import "time"

// Request DTOs

type CreateSpecialtyRequest struct {
	Name               string `json:"name" validate:"required,min=2,max=100"`
	Description        string `json:"description" validate:"omitempty"`
	DefaultSlotMinutes *int   `json:"default_slot_minutes" validate:"omitempty,min=5,max=240"`
}

type UpdateSpecialtyRequest struct {
	Name               string `json:"name" validate:"omitempty,min=2,max=100"`
	Description        *string `json:"description" validate:"omitempty"`
	DefaultSlotMinutes *int    `json:"default_slot_minutes" validate:"omitempty,min=5,max=240"`
	IsActive           *bool   `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type SpecialtyResponse struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	DefaultSlotMinutes *int      `json:"default_slot_minutes,omitempty"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"specialties"`
	Total       int                 `json:"total"`
}
