package usecase

import (
	"context"
	"errors"

	"pharmacenter-api/internal/converter"
	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("contact message not found")

type ContactMessageUsecase struct {
	DB          *gorm.DB
	Log         *logrus.Logger
	MessageRepo repository.ContactMessageRepository
}

func NewContactMessageUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	messageRepo repository.ContactMessageRepository,
) *ContactMessageUsecase {
	return &ContactMessageUsecase{
		DB:          db,
		Log:         log,
		MessageRepo: messageRepo,
	}
}

// SubmitMessage stores a public contact-form submission.
func (u *ContactMessageUsecase) SubmitMessage(ctx context.Context, request *dto.CreateContactMessageRequest) (*dto.ContactMessageResponse, error) {
	message := &entity.ContactMessage{
		Name:    request.Name,
		Email:   request.Email,
		Phone:   request.Phone,
		Message: request.Message,
	}

	if err := u.MessageRepo.Create(u.DB.WithContext(ctx), message); err != nil {
		u.Log.Warnf("Failed to store contact message: %+v", err)
		return nil, err
	}

	return converter.ContactMessageToResponse(message), nil
}

func (u *ContactMessageUsecase) ListMessages(ctx context.Context, unreadOnly bool, limit, offset int) (*dto.ContactMessageListResponse, error) {
	messages, total, err := u.MessageRepo.FindAll(u.DB.WithContext(ctx), unreadOnly, limit, offset)
	if err != nil {
		u.Log.Warnf("Failed to list contact messages: %+v", err)
		return nil, err
	}

	return &dto.ContactMessageListResponse{
		Messages: converter.ContactMessagesToResponses(messages),
		Total:    total,
	}, nil
}

func (u *ContactMessageUsecase) MarkMessageRead(ctx context.Context, id uuid.UUID) error {
	rows, err := u.MessageRepo.MarkRead(u.DB.WithContext(ctx), id)
	if err != nil {
		u.Log.Warnf("Failed to mark contact message %s read: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (u *ContactMessageUsecase) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	rows, err := u.MessageRepo.Delete(u.DB.WithContext(ctx), id)
	if err != nil {
		u.Log.Warnf("Failed to delete contact message %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrMessageNotFound
	}
	return nil
}
