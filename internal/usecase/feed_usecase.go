package usecase

import (
	"context"
	"fmt"
	"time"

	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/internal/domain/repository"
	"pharmacenter-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// FeedUsecase renders appointment sets as iCalendar subscription feeds.
// Feeds are pure projections: an unknown doctor or specialty filter simply
// yields an empty calendar, and cancelled appointments never appear.
type FeedUsecase struct {
	DB              *gorm.DB
	Log             *logrus.Logger
	AppointmentRepo repository.AppointmentRepository
	ICal            *service.ICalService
	SlotCache       *service.SlotCacheService
}

func NewFeedUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	ical *service.ICalService,
	slotCache *service.SlotCacheService,
) *FeedUsecase {
	return &FeedUsecase{
		DB:              db,
		Log:             log,
		AppointmentRepo: appointmentRepo,
		ICal:            ical,
		SlotCache:       slotCache,
	}
}

// GenerateFeed builds the VCALENDAR document for the given filter. Short
// Redis caching absorbs calendar clients that poll aggressively; staleness
// is bounded by the feed TTL alone.
func (u *FeedUsecase) GenerateFeed(ctx context.Context, filter *entity.AppointmentFilter) (string, error) {
	if filter == nil {
		filter = &entity.AppointmentFilter{}
	}
	if filter.From != "" {
		if _, err := time.Parse("2006-01-02", filter.From); err != nil {
			return "", ErrInvalidDate
		}
	}
	if filter.To != "" {
		if _, err := time.Parse("2006-01-02", filter.To); err != nil {
			return "", ErrInvalidDate
		}
	}

	key := feedFilterKey(filter)
	if document, ok := u.SlotCache.GetFeed(ctx, key); ok {
		return document, nil
	}

	filter.Statuses = []entity.AppointmentStatus{
		entity.AppointmentStatusPending,
		entity.AppointmentStatusConfirmed,
	}

	appointments, _, err := u.AppointmentRepo.FindByFilter(u.DB.WithContext(ctx), filter, 0, 0)
	if err != nil {
		u.Log.Warnf("Failed to load appointments for feed: %+v", err)
		return "", err
	}

	document := u.ICal.BuildCalendar(appointments)
	u.SlotCache.SetFeed(ctx, key, document)
	return document, nil
}

// feedFilterKey normalizes a filter into a stable cache key.
func feedFilterKey(filter *entity.AppointmentFilter) string {
	doctor := ""
	if filter.DoctorID != nil {
		doctor = filter.DoctorID.String()
	}
	specialty := ""
	if filter.SpecialtyID != nil {
		specialty = fmt.Sprint(*filter.SpecialtyID)
	}
	return fmt.Sprintf("doctor=%s:specialty=%s:from=%s:to=%s", doctor, specialty, filter.From, filter.To)
}
