package usecase

import (
	"context"
	"errors"

	"pharmacenter-api/internal/converter"
	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/internal/domain/repository"
	"pharmacenter-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSpecialtyNameTaken = errors.New("specialty name already exists")

type SpecialtyUsecase struct {
	DB            *gorm.DB
	Log           *logrus.Logger
	SpecialtyRepo repository.SpecialtyRepository
	Audit         service.AuditService
}

func NewSpecialtyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialtyRepo repository.SpecialtyRepository,
	audit service.AuditService,
) *SpecialtyUsecase {
	return &SpecialtyUsecase{
		DB:            db,
		Log:           log,
		SpecialtyRepo: specialtyRepo,
		Audit:         audit,
	}
}

func (u *SpecialtyUsecase) CreateSpecialty(ctx context.Context, actorID uuid.UUID, request *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	db := u.DB.WithContext(ctx)

	specialty := &entity.Specialty{
		Name:               request.Name,
		Description:        request.Description,
		DefaultSlotMinutes: request.DefaultSlotMinutes,
	}

	if err := u.SpecialtyRepo.Create(db, specialty); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSpecialtyNameTaken
		}
		u.Log.Warnf("Failed to create specialty: %+v", err)
		return nil, err
	}

	u.Audit.Record(db, &actorID, entity.AuditActionSpecialtyCreate, "specialty", specialty.Name, nil)
	return converter.SpecialtyToResponse(specialty), nil
}

func (u *SpecialtyUsecase) GetSpecialty(ctx context.Context, id int) (*dto.SpecialtyResponse, error) {
	specialty, err := u.SpecialtyRepo.FindByID(u.DB.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}
	return converter.SpecialtyToResponse(specialty), nil
}

func (u *SpecialtyUsecase) ListSpecialties(ctx context.Context, activeOnly bool) (*dto.SpecialtyListResponse, error) {
	specialties, err := u.SpecialtyRepo.FindAll(u.DB.WithContext(ctx), activeOnly)
	if err != nil {
		u.Log.Warnf("Failed to list specialties: %+v", err)
		return nil, err
	}

	return &dto.SpecialtyListResponse{
		Specialties: converter.SpecialtiesToResponses(specialties),
		Total:       len(specialties),
	}, nil
}

func (u *SpecialtyUsecase) UpdateSpecialty(ctx context.Context, actorID uuid.UUID, id int, request *dto.UpdateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	db := u.DB.WithContext(ctx)

	specialty, err := u.SpecialtyRepo.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	if request.Name != "" {
		specialty.Name = request.Name
	}
	if request.Description != nil {
		specialty.Description = *request.Description
	}
	if request.DefaultSlotMinutes != nil {
		specialty.DefaultSlotMinutes = request.DefaultSlotMinutes
	}
	if request.IsActive != nil {
		specialty.IsActive = request.IsActive
	}

	if err := u.SpecialtyRepo.Update(db, specialty); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSpecialtyNameTaken
		}
		u.Log.Warnf("Failed to update specialty %d: %+v", id, err)
		return nil, err
	}

	u.Audit.Record(db, &actorID, entity.AuditActionSpecialtyUpdate, "specialty", specialty.Name, nil)
	return converter.SpecialtyToResponse(specialty), nil
}
