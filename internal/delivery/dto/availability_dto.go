package dto

import "github.com/google/uuid"

// AvailabilityResponse lists the free slot start times for one doctor on
// one date, ascending.
type AvailabilityResponse struct {
	DoctorID uuid.UUID `json:"doctor_id"`
	Date     string    `json:"date"`
	Slots    []string  `json:"slots"`
}
