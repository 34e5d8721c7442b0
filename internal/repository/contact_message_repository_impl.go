package repository

import (
	"pharmacenter-api/internal/domain/entity"
	domainRepo "pharmacenter-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactMessageRepository struct{}

func NewContactMessageRepository() domainRepo.ContactMessageRepository {
	return &contactMessageRepository{}
}

func (r *contactMessageRepository) Create(db *gorm.DB, message *entity.ContactMessage) error {
	return db.Create(message).Error
}

func (r *contactMessageRepository) FindAll(db *gorm.DB, unreadOnly bool, limit, offset int) ([]entity.ContactMessage, int64, error) {
	query := db.Model(&entity.ContactMessage{})
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []entity.ContactMessage
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (r *contactMessageRepository) MarkRead(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.ContactMessage{}).
		Where("id = ? AND is_read = ?", id, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (r *contactMessageRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.ContactMessage{})
	return result.RowsAffected, result.Error
}
