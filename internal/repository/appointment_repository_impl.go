package repository

import (
	"errors"
	"time"

	"pharmacenter-api/internal/domain/entity"
	domainRepo "pharmacenter-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor.Specialty").Preload("Specialty").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.Specialty").
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC, start_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByFilter(db *gorm.DB, filter *entity.AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error) {
	query := db.Model(&entity.Appointment{})

	if filter != nil {
		if filter.DoctorID != nil {
			query = query.Where("doctor_id = ?", *filter.DoctorID)
		}
		if filter.SpecialtyID != nil {
			query = query.Where("specialty_id = ?", *filter.SpecialtyID)
		}
		if filter.From != "" {
			query = query.Where("appointment_date >= ?", filter.From)
		}
		if filter.To != "" {
			query = query.Where("appointment_date <= ?", filter.To)
		}
		if len(filter.Statuses) > 0 {
			query = query.Where("status IN ?", filter.Statuses)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appointments []entity.Appointment
	query = query.Preload("Doctor.Specialty").Preload("Specialty").
		Order("appointment_date ASC, start_time ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&appointments).Error; err != nil {
		return nil, 0, err
	}

	return appointments, total, nil
}

func (r *appointmentRepository) FindActiveTimes(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]string, error) {
	var times []string
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ? AND status != ?",
			doctorID, date.Format("2006-01-02"), entity.AppointmentStatusCancelled).
		Order("start_time ASC").
		Pluck("start_time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

// UpdateStatusFrom performs the transition as a single guarded UPDATE so two
// concurrent callers cannot both move the same appointment.
func (r *appointmentRepository) UpdateStatusFrom(db *gorm.DB, id uuid.UUID, from []entity.AppointmentStatus, to entity.AppointmentStatus, notes *string) (int64, error) {
	updates := map[string]interface{}{"status": to}
	if notes != nil {
		updates["notes"] = *notes
	}

	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}
