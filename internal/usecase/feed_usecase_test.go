package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedUsecase(t *testing.T, appointmentRepo *fakeAppointmentRepo) *FeedUsecase {
	t.Helper()
	return NewFeedUsecase(
		newTestDB(t),
		newTestLogger(),
		appointmentRepo,
		service.NewICalService("pharmacenter", 30),
		newTestSlotCache(),
	)
}

func feedAppointment(status entity.AppointmentStatus) entity.Appointment {
	return entity.Appointment{
		ID:              uuid.New(),
		PatientName:     "Pat Dupont",
		DoctorID:        uuid.New(),
		AppointmentDate: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		Reason:          "Annual checkup",
		Status:          status,
		UpdatedAt:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGenerateFeed(t *testing.T) {
	repo := newFakeAppointmentRepo()
	pending := feedAppointment(entity.AppointmentStatusPending)
	confirmed := feedAppointment(entity.AppointmentStatusConfirmed)
	repo.filterResult = []entity.Appointment{pending, confirmed}

	uc := newFeedUsecase(t, repo)

	document, err := uc.GenerateFeed(context.Background(), &entity.AppointmentFilter{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(document, "BEGIN:VCALENDAR"))
	assert.Contains(t, document, pending.ID.String()+"@pharmacenter")
	assert.Contains(t, document, confirmed.ID.String()+"@pharmacenter")
	assert.Contains(t, document, "STATUS:TENTATIVE")
	assert.Contains(t, document, "STATUS:CONFIRMED")
}

func TestGenerateFeedRestrictsToActiveStatuses(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := newFeedUsecase(t, repo)

	_, err := uc.GenerateFeed(context.Background(), &entity.AppointmentFilter{})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter)
	assert.ElementsMatch(t, []entity.AppointmentStatus{
		entity.AppointmentStatusPending,
		entity.AppointmentStatusConfirmed,
	}, repo.lastFilter.Statuses)
}

func TestGenerateFeedEmptyMatchIsValidCalendar(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := newFeedUsecase(t, repo)

	doctorID := uuid.New()
	document, err := uc.GenerateFeed(context.Background(), &entity.AppointmentFilter{DoctorID: &doctorID})
	require.NoError(t, err)

	assert.Contains(t, document, "BEGIN:VCALENDAR")
	assert.Contains(t, document, "END:VCALENDAR")
	assert.NotContains(t, document, "BEGIN:VEVENT")
}

func TestGenerateFeedIsDeterministic(t *testing.T) {
	repo := newFakeAppointmentRepo()
	repo.filterResult = []entity.Appointment{feedAppointment(entity.AppointmentStatusConfirmed)}
	uc := newFeedUsecase(t, repo)

	first, err := uc.GenerateFeed(context.Background(), &entity.AppointmentFilter{})
	require.NoError(t, err)
	second, err := uc.GenerateFeed(context.Background(), &entity.AppointmentFilter{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateFeedInvalidDateFilter(t *testing.T) {
	uc := newFeedUsecase(t, newFakeAppointmentRepo())

	_, err := uc.GenerateFeed(context.Background(), &entity.AppointmentFilter{From: "07/09/2026"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
