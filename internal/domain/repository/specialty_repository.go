package repository

import (
	"pharmacenter-api/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialtyRepository interface {
	Create(db *gorm.DB, specialty *entity.Specialty) error
	FindByID(db *gorm.DB, id int) (*entity.Specialty, error)
	FindAll(db *gorm.DB, activeOnly bool) ([]entity.Specialty, error)
	Update(db *gorm.DB, specialty *entity.Specialty) error
}
