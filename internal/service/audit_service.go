package service

import (
	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records back-office and booking actions. Failures are logged
// and swallowed: the audit trail never blocks the primary operation.
type AuditService interface {
	Record(db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, detail interface{})
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, detail interface{}) {
	auditLog := &entity.AuditLog{
		UserID: userID,
		Action: action,
		Metadata: entity.JSON{
			"entity":    entityName,
			"entity_id": entityID,
			"detail":    detail,
		},
	}

	if err := s.auditRepo.Create(db, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log for %s: %+v", action, err)
	}
}
