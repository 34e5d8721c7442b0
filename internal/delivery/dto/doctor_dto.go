package dto

import (
	"time"

	"pharmacenter-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	FullName     string              `json:"full_name" validate:"required,min=2,max=255"`
	SpecialtyID  int                 `json:"specialty_id" validate:"required,min=1"`
	Biography    string              `json:"biography" validate:"omitempty"`
	SlotMinutes  *int                `json:"slot_minutes" validate:"omitempty,min=5,max=240"`
	WorkingHours entity.WeekTemplate `json:"working_hours" validate:"omitempty"`
}

type UpdateDoctorRequest struct {
	FullName     string              `json:"full_name" validate:"omitempty,min=2,max=255"`
	SpecialtyID  *int                `json:"specialty_id" validate:"omitempty,min=1"`
	Biography    *string             `json:"biography" validate:"omitempty"`
	SlotMinutes  *int                `json:"slot_minutes" validate:"omitempty,min=5,max=240"`
	WorkingHours entity.WeekTemplate `json:"working_hours" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID           uuid.UUID           `json:"id"`
	FullName     string              `json:"full_name"`
	SpecialtyID  int                 `json:"specialty_id"`
	Specialty    *SpecialtyResponse  `json:"specialty,omitempty"`
	Biography    string              `json:"biography,omitempty"`
	SlotMinutes  *int                `json:"slot_minutes,omitempty"`
	WorkingHours entity.WeekTemplate `json:"working_hours,omitempty"`
	IsActive     bool                `json:"is_active"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
