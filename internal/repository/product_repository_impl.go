package repository

import (
	"errors"

	"pharmacenter-api/internal/domain/entity"
	domainRepo "pharmacenter-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepository struct{}

func NewProductRepository() domainRepo.ProductRepository {
	return &productRepository{}
}

func (r *productRepository) Create(db *gorm.DB, product *entity.Product) error {
	return db.Create(product).Error
}

func (r *productRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := db.Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindAll(db *gorm.DB, activeOnly bool, limit, offset int) ([]entity.Product, int64, error) {
	query := db.Model(&entity.Product{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []entity.Product
	if err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) Update(db *gorm.DB, product *entity.Product) error {
	return db.Save(product).Error
}

func (r *productRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Product{})
	return result.RowsAffected, result.Error
}
