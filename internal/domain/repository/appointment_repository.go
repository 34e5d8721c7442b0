package repository

import (
	"time"

	"pharmacenter-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	// Create inserts the appointment. The partial unique index over the
	// active (doctor_id, appointment_date, start_time) tuple makes the
	// insert fail with gorm.ErrDuplicatedKey when the slot is taken.
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByFilter(db *gorm.DB, filter *entity.AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error)
	// FindActiveTimes returns the HH:MM start times of every non-cancelled
	// appointment for the doctor on the given date.
	FindActiveTimes(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]string, error)
	// UpdateStatusFrom transitions status only when the current status is in
	// from, optionally replacing staff notes. Returns affected rows; zero
	// means the transition was not allowed at the time of the update.
	UpdateStatusFrom(db *gorm.DB, id uuid.UUID, from []entity.AppointmentStatus, to entity.AppointmentStatus, notes *string) (int64, error)
}
