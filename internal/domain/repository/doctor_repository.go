package repository

import (
	"pharmacenter-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindAll(db *gorm.DB, activeOnly bool, specialtyID *int) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	// SetActive archives or restores a doctor. Returns affected rows.
	SetActive(db *gorm.DB, id uuid.UUID, active bool) (int64, error)
}
