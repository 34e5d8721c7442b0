package entity

import "github.com/google/uuid"

// AppointmentFilter is a domain-level filter for querying appointments.
// All set fields are combined with AND. Used by the repository layer to
// avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	DoctorID    *uuid.UUID
	SpecialtyID *int
	From        string // Format: YYYY-MM-DD, inclusive
	To          string // Format: YYYY-MM-DD, inclusive
	Statuses    []AppointmentStatus
}
