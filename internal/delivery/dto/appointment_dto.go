package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
	Date     string    `json:"date" validate:"required,dateonly"` // Format: YYYY-MM-DD
	Time     string    `json:"time" validate:"required,hhmm"`     // Format: HH:MM
	Reason   string    `json:"reason" validate:"required,min=5,max=2000"`
}

type UpdateAppointmentStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=pending confirmed cancelled"`
	Notes  *string `json:"notes" validate:"omitempty,max=2000"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID          `json:"id"`
	PatientID   uuid.UUID          `json:"patient_id"`
	PatientName string             `json:"patient_name"`
	DoctorID    uuid.UUID          `json:"doctor_id"`
	Doctor      *DoctorResponse    `json:"doctor,omitempty"`
	SpecialtyID *int               `json:"specialty_id,omitempty"`
	Specialty   *SpecialtyResponse `json:"specialty,omitempty"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	Reason      string             `json:"reason"`
	Notes       string             `json:"notes,omitempty"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
}
