package repository

import (
	"pharmacenter-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessageRepository interface {
	Create(db *gorm.DB, message *entity.ContactMessage) error
	FindAll(db *gorm.DB, unreadOnly bool, limit, offset int) ([]entity.ContactMessage, int64, error)
	MarkRead(db *gorm.DB, id uuid.UUID) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
