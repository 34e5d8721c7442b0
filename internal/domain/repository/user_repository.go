package repository

import (
	"pharmacenter-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.User, int64, error)
	// SetActive toggles the account flag. Returns affected rows.
	SetActive(db *gorm.DB, id uuid.UUID, active bool) (int64, error)
}
