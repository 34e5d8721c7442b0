package repository

import (
	"errors"

	"pharmacenter-api/internal/domain/entity"
	domainRepo "pharmacenter-api/internal/domain/repository"

	"gorm.io/gorm"
)

type specialtyRepository struct{}

func NewSpecialtyRepository() domainRepo.SpecialtyRepository {
	return &specialtyRepository{}
}

func (r *specialtyRepository) Create(db *gorm.DB, specialty *entity.Specialty) error {
	return db.Create(specialty).Error
}

func (r *specialtyRepository) FindByID(db *gorm.DB, id int) (*entity.Specialty, error) {
	var specialty entity.Specialty
	err := db.Where("id = ?", id).First(&specialty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialty, nil
}

func (r *specialtyRepository) FindAll(db *gorm.DB, activeOnly bool) ([]entity.Specialty, error) {
	query := db.Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var specialties []entity.Specialty
	if err := query.Find(&specialties).Error; err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *specialtyRepository) Update(db *gorm.DB, specialty *entity.Specialty) error {
	return db.Omit("Doctors").Save(specialty).Error
}
