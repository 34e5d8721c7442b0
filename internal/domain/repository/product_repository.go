package repository

import (
	"pharmacenter-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(db *gorm.DB, product *entity.Product) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Product, error)
	FindAll(db *gorm.DB, activeOnly bool, limit, offset int) ([]entity.Product, int64, error)
	Update(db *gorm.DB, product *entity.Product) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
