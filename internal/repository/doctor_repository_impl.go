package repository

import (
	"errors"

	"pharmacenter-api/internal/domain/entity"
	domainRepo "pharmacenter-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Specialty").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB, activeOnly bool, specialtyID *int) ([]entity.Doctor, error) {
	query := db.Preload("Specialty")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if specialtyID != nil {
		query = query.Where("specialty_id = ?", *specialtyID)
	}

	var doctors []entity.Doctor
	if err := query.Order("full_name ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Specialty").Save(doctor).Error
}

func (r *doctorRepository) SetActive(db *gorm.DB, id uuid.UUID, active bool) (int64, error) {
	result := db.Model(&entity.Doctor{}).
		Where("id = ?", id).
		Update("is_active", active)
	return result.RowsAffected, result.Error
}
