package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatus reports whether s is a known status value.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is a booked slot for one patient with one doctor.
//
// Invariant: at most one non-cancelled appointment may exist per
// (doctor_id, appointment_date, start_time). Enforced by a partial unique
// index in the database, not by application-level checks.
type Appointment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	PatientName string    `gorm:"type:varchar(255);not null" json:"patient_name"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	SpecialtyID *int      `gorm:"index" json:"specialty_id,omitempty"`
	// AppointmentDate is a plain calendar date; StartTime is an HH:MM slot
	// drawn from the doctor's daily template.
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	StartTime       string            `gorm:"type:varchar(5);not null" json:"start_time"`
	Reason          string            `gorm:"type:text;not null" json:"reason"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   User       `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor    Doctor     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Specialty *Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// CanTransition reports whether the status change is allowed:
// pending->confirmed, pending->cancelled, confirmed->cancelled.
// Cancelled is terminal.
func (a *Appointment) CanTransition(to AppointmentStatus) bool {
	switch a.Status {
	case AppointmentStatusPending:
		return to == AppointmentStatusConfirmed || to == AppointmentStatusCancelled
	case AppointmentStatusConfirmed:
		return to == AppointmentStatusCancelled
	}
	return false
}

// StartAt combines date and slot time into a wall-clock instant.
func (a *Appointment) StartAt() time.Time {
	slot, err := time.Parse("15:04", a.StartTime)
	if err != nil {
		return a.AppointmentDate
	}
	d := a.AppointmentDate
	return time.Date(d.Year(), d.Month(), d.Day(), slot.Hour(), slot.Minute(), 0, 0, d.Location())
}
