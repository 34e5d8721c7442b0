package usecase

import (
	"context"
	"errors"
	"time"

	"pharmacenter-api/config"
	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/internal/domain/repository"
	"pharmacenter-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidDate    = errors.New("invalid date format, expected YYYY-MM-DD")
)

// AvailabilityUsecase computes the bookable start times for one doctor on
// one calendar date. Results are a snapshot of current appointment state;
// the authoritative conflict check happens on insert, not here.
type AvailabilityUsecase struct {
	DB              *gorm.DB
	Log             *logrus.Logger
	Booking         config.BookingConfig
	DoctorRepo      repository.DoctorRepository
	AppointmentRepo repository.AppointmentRepository
	SlotCache       *service.SlotCacheService
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	booking config.BookingConfig,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	slotCache *service.SlotCacheService,
) *AvailabilityUsecase {
	return &AvailabilityUsecase{
		DB:              db,
		Log:             log,
		Booking:         booking,
		DoctorRepo:      doctorRepo,
		AppointmentRepo: appointmentRepo,
		SlotCache:       slotCache,
	}
}

// GetAvailableSlots returns the free HH:MM start times for the doctor on
// the given date. Past dates yield an empty list, archived or unknown
// doctors ErrDoctorNotFound.
func (u *AvailabilityUsecase) GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, dateStr string) (*dto.AvailabilityResponse, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	db := u.DB.WithContext(ctx)

	doctor, err := u.DoctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.Log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.Active() {
		return nil, ErrDoctorNotFound
	}

	response := &dto.AvailabilityResponse{
		DoctorID: doctorID,
		Date:     dateStr,
		Slots:    []string{},
	}

	today := time.Now().Format("2006-01-02")
	if dateStr < today {
		return response, nil
	}

	if u.SlotCache != nil {
		if slots, ok := u.SlotCache.GetSlots(ctx, doctorID, dateStr); ok {
			response.Slots = slots
			return response, nil
		}
	}

	offered := u.OfferedSlots(doctor, date)

	taken, err := u.AppointmentRepo.FindActiveTimes(db, doctorID, date)
	if err != nil {
		u.Log.Warnf("Failed to load booked times for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	takenSet := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		takenSet[t] = struct{}{}
	}

	for _, slot := range offered {
		if _, booked := takenSet[slot]; !booked {
			response.Slots = append(response.Slots, slot)
		}
	}

	if u.SlotCache != nil {
		u.SlotCache.SetSlots(ctx, doctorID, dateStr, response.Slots)
	}

	return response, nil
}

// OfferedSlots expands the doctor's week template into the grid of start
// times offered on the given date, ignoring existing bookings. A slot is
// offered only when the full appointment fits inside its interval.
func (u *AvailabilityUsecase) OfferedSlots(doctor *entity.Doctor, date time.Time) []string {
	template := doctor.TemplateOr(entity.DefaultWeekTemplate(u.Booking.DayStart, u.Booking.DayEnd))
	intervals := template.IntervalsFor(date.Weekday())

	duration := time.Duration(doctor.DurationMinutes(u.Booking.SlotMinutes)) * time.Minute

	var slots []string
	for _, interval := range intervals {
		start, err := time.Parse("15:04", interval.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse("15:04", interval.End)
		if err != nil {
			continue
		}
		for at := start; !at.Add(duration).After(end); at = at.Add(duration) {
			slots = append(slots, at.Format("15:04"))
		}
	}
	return slots
}
