package usecase

import (
	"context"
	"errors"
	"fmt"

	"pharmacenter-api/internal/converter"
	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/internal/domain/repository"
	"pharmacenter-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSpecialtyNotFound = errors.New("specialty not found")
	ErrInvalidTemplate   = errors.New("invalid working hours template")
)

type DoctorUsecase struct {
	DB            *gorm.DB
	Log           *logrus.Logger
	DoctorRepo    repository.DoctorRepository
	SpecialtyRepo repository.SpecialtyRepository
	Audit         service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	specialtyRepo repository.SpecialtyRepository,
	audit service.AuditService,
) *DoctorUsecase {
	return &DoctorUsecase{
		DB:            db,
		Log:           log,
		DoctorRepo:    doctorRepo,
		SpecialtyRepo: specialtyRepo,
		Audit:         audit,
	}
}

func (u *DoctorUsecase) CreateDoctor(ctx context.Context, actorID uuid.UUID, request *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	db := u.DB.WithContext(ctx)

	specialty, err := u.SpecialtyRepo.FindByID(db, request.SpecialtyID)
	if err != nil {
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	if len(request.WorkingHours) > 0 {
		if err := request.WorkingHours.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
		}
	}

	doctor := &entity.Doctor{
		FullName:     request.FullName,
		SpecialtyID:  request.SpecialtyID,
		Biography:    request.Biography,
		SlotMinutes:  request.SlotMinutes,
		WorkingHours: request.WorkingHours,
	}

	if err := u.DoctorRepo.Create(db, doctor); err != nil {
		u.Log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	u.Audit.Record(db, &actorID, entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), nil)

	doctor.Specialty = *specialty
	return converter.DoctorToResponse(doctor), nil
}

// GetDoctor returns any doctor, archived included, so historical
// appointments stay renderable from the back office.
func (u *DoctorUsecase) GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.DoctorRepo.FindByID(u.DB.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

// ListDoctors returns the doctor directory. The public site passes
// activeOnly=true; back office sees everyone.
func (u *DoctorUsecase) ListDoctors(ctx context.Context, activeOnly bool, specialtyID *int) (*dto.DoctorListResponse, error) {
	doctors, err := u.DoctorRepo.FindAll(u.DB.WithContext(ctx), activeOnly, specialtyID)
	if err != nil {
		u.Log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *DoctorUsecase) UpdateDoctor(ctx context.Context, actorID, id uuid.UUID, request *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	db := u.DB.WithContext(ctx)

	doctor, err := u.DoctorRepo.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if request.FullName != "" {
		doctor.FullName = request.FullName
	}
	if request.SpecialtyID != nil {
		specialty, err := u.SpecialtyRepo.FindByID(db, *request.SpecialtyID)
		if err != nil {
			return nil, err
		}
		if specialty == nil {
			return nil, ErrSpecialtyNotFound
		}
		doctor.SpecialtyID = *request.SpecialtyID
		doctor.Specialty = *specialty
	}
	if request.Biography != nil {
		doctor.Biography = *request.Biography
	}
	if request.SlotMinutes != nil {
		doctor.SlotMinutes = request.SlotMinutes
	}
	if request.WorkingHours != nil {
		if err := request.WorkingHours.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
		}
		doctor.WorkingHours = request.WorkingHours
	}

	if err := u.DoctorRepo.Update(db, doctor); err != nil {
		u.Log.Warnf("Failed to update doctor %s: %+v", id, err)
		return nil, err
	}

	u.Audit.Record(db, &actorID, entity.AuditActionDoctorUpdate, "doctor", id.String(), nil)
	return converter.DoctorToResponse(doctor), nil
}

// SetDoctorActive archives or restores a doctor. Archiving hides the doctor
// from availability and public listings; appointments are untouched.
func (u *DoctorUsecase) SetDoctorActive(ctx context.Context, actorID, id uuid.UUID, active bool) error {
	db := u.DB.WithContext(ctx)

	rows, err := u.DoctorRepo.SetActive(db, id, active)
	if err != nil {
		u.Log.Warnf("Failed to toggle doctor %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrDoctorNotFound
	}

	u.Audit.Record(db, &actorID, entity.AuditActionDoctorArchive, "doctor", id.String(), map[string]interface{}{
		"is_active": active,
	})
	return nil
}
