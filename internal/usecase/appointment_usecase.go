package usecase

import (
	"context"
	"errors"
	"time"

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
	// ErrSlotTaken means another active appointment already holds the slot.
	// Surfaces from the database's partial unique index, never from a
	// read-then-write check.
	ErrSlotTaken           = errors.New("slot is already booked")
	ErrSlotNotOffered      = errors.New("requested time is not an offered slot")
	ErrPastSlot            = errors.New("cannot book a slot in the past")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("unknown appointment status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrNotOwned            = errors.New("appointment belongs to another patient")
	ErrUserNotFound        = errors.New("user not found")
)

type AppointmentUsecase struct {
	DB              *gorm.DB
	Log             *logrus.Logger
	AppointmentRepo repository.AppointmentRepository
	UserRepo        repository.UserRepository
	Availability    *AvailabilityUsecase
	SlotCache       *service.SlotCacheService
	Audit           service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	availability *AvailabilityUsecase,
	slotCache *service.SlotCacheService,
	audit service.AuditService,
) *AppointmentUsecase {
	return &AppointmentUsecase{
		DB:              db,
		Log:             log,
		AppointmentRepo: appointmentRepo,
		UserRepo:        userRepo,
		Availability:    availability,
		SlotCache:       slotCache,
		Audit:           audit,
	}
}

// CreateAppointment books a slot for the authenticated patient. Conflict
// detection is delegated to the insert itself: a duplicate-key failure on
// the active slot tuple maps to ErrSlotTaken.
func (u *AppointmentUsecase) CreateAppointment(ctx context.Context, patientID uuid.UUID, request *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	db := u.DB.WithContext(ctx)

	patient, err := u.UserRepo.FindByID(db, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || !patient.Active() {
		return nil, ErrUserNotFound
	}

	doctor, err := u.Availability.DoctorRepo.FindByID(db, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !doctor.Active() {
		return nil, ErrDoctorNotFound
	}

	today := time.Now().Format("2006-01-02")
	if request.Date < today {
		return nil, ErrPastSlot
	}

	offered := false
	for _, slot := range u.Availability.OfferedSlots(doctor, date) {
		if slot == request.Time {
			offered = true
			break
		}
	}
	if !offered {
		return nil, ErrSlotNotOffered
	}

	specialtyID := doctor.SpecialtyID
	appointment := &entity.Appointment{
		PatientID:       patientID,
		PatientName:     patient.FullName,
		DoctorID:        doctor.ID,
		SpecialtyID:     &specialtyID,
		AppointmentDate: date,
		StartTime:       request.Time,
		Reason:          request.Reason,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.AppointmentRepo.Create(db, appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotTaken
		}
		u.Log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.SlotCache.InvalidateSlots(ctx, doctor.ID, request.Date)
	u.Audit.Record(db, &patientID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), map[string]interface{}{
		"doctor_id": doctor.ID.String(),
		"date":      request.Date,
		"time":      request.Time,
	})

	appointment.Doctor = *doctor
	return converter.AppointmentToResponse(appointment), nil
}

// UpdateStatus moves an appointment through its lifecycle. Staff may apply
// any allowed transition; patients may only cancel their own appointments.
// The transition itself is a guarded UPDATE, so a concurrent change makes
// this return ErrInvalidTransition rather than clobbering state.
func (u *AppointmentUsecase) UpdateStatus(ctx context.Context, actorID uuid.UUID, actorRoleID int, appointmentID uuid.UUID, request *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	target := entity.AppointmentStatus(request.Status)
	if !entity.ValidStatus(target) {
		return nil, ErrInvalidStatus
	}

	db := u.DB.WithContext(ctx)

	appointment, err := u.AppointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !entity.IsStaffRole(actorRoleID) {
		if appointment.PatientID != actorID {
			return nil, ErrNotOwned
		}
		if target != entity.AppointmentStatusCancelled {
			return nil, ErrInvalidTransition
		}
	}

	if !appointment.CanTransition(target) {
		return nil, ErrInvalidTransition
	}

	from := allowedSources(target)
	rows, err := u.AppointmentRepo.UpdateStatusFrom(db, appointmentID, from, target, request.Notes)
	if err != nil {
		u.Log.Warnf("Failed to update appointment %s status: %+v", appointmentID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInvalidTransition
	}

	dateStr := appointment.AppointmentDate.Format("2006-01-02")
	u.SlotCache.InvalidateSlots(ctx, appointment.DoctorID, dateStr)

	action := entity.AuditActionAppointmentConfirm
	if target == entity.AppointmentStatusCancelled {
		action = entity.AuditActionAppointmentCancel
	}
	u.Audit.Record(db, &actorID, action, "appointment", appointmentID.String(), map[string]interface{}{
		"from": string(appointment.Status),
		"to":   string(target),
	})

	updated, err := u.AppointmentRepo.FindByID(db, appointmentID)
	if err != nil || updated == nil {
		appointment.Status = target
		if request.Notes != nil {
			appointment.Notes = *request.Notes
		}
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(updated), nil
}

// allowedSources returns the statuses an appointment may hold immediately
// before moving to target.
func allowedSources(target entity.AppointmentStatus) []entity.AppointmentStatus {
	switch target {
	case entity.AppointmentStatusConfirmed:
		return []entity.AppointmentStatus{entity.AppointmentStatusPending}
	case entity.AppointmentStatusCancelled:
		return []entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed}
	}
	return nil
}

// GetMyAppointments lists the authenticated patient's own appointments,
// newest first.
func (u *AppointmentUsecase) GetMyAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.AppointmentRepo.FindByPatientID(u.DB.WithContext(ctx), patientID)
	if err != nil {
		u.Log.Warnf("Failed to list appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        int64(len(appointments)),
	}, nil
}

// ListAppointments is the back-office view over all appointments.
func (u *AppointmentUsecase) ListAppointments(ctx context.Context, filter *entity.AppointmentFilter, limit, offset int) (*dto.AppointmentListResponse, error) {
	if filter != nil {
		if filter.From != "" {
			if _, err := time.Parse("2006-01-02", filter.From); err != nil {
				return nil, ErrInvalidDate
			}
		}
		if filter.To != "" {
			if _, err := time.Parse("2006-01-02", filter.To); err != nil {
				return nil, ErrInvalidDate
			}
		}
	}

	appointments, total, err := u.AppointmentRepo.FindByFilter(u.DB.WithContext(ctx), filter, limit, offset)
	if err != nil {
		u.Log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        total,
	}, nil
}
