package usecase

import (
	"context"
	"testing"

	"pharmacenter-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mondayMorningDoctor() *entity.Doctor {
	return &entity.Doctor{
		ID:       uuid.New(),
		FullName: "Alice Moreau",
		WorkingHours: entity.WeekTemplate{
			"monday": {{Start: "09:00", End: "10:00"}},
		},
	}
}

func newAvailabilityUsecase(t *testing.T, doctorRepo *fakeDoctorRepo, appointmentRepo *fakeAppointmentRepo) *AvailabilityUsecase {
	t.Helper()
	return NewAvailabilityUsecase(
		newTestDB(t),
		newTestLogger(),
		testBookingConfig(),
		doctorRepo,
		appointmentRepo,
		newTestSlotCache(),
	)
}

func TestGetAvailableSlots(t *testing.T) {
	doctor := mondayMorningDoctor()
	appointmentRepo := newFakeAppointmentRepo()
	uc := newAvailabilityUsecase(t, newFakeDoctorRepo(doctor), appointmentRepo)

	date := nextMonday().Format("2006-01-02")

	result, err := uc.GetAvailableSlots(context.Background(), doctor.ID, date)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, result.Slots)
	assert.Equal(t, doctor.ID, result.DoctorID)
	assert.Equal(t, date, result.Date)
}

func TestGetAvailableSlotsExcludesBookedTimes(t *testing.T) {
	doctor := mondayMorningDoctor()
	appointmentRepo := newFakeAppointmentRepo()
	appointmentRepo.activeTimes = []string{"09:00"}
	uc := newAvailabilityUsecase(t, newFakeDoctorRepo(doctor), appointmentRepo)

	result, err := uc.GetAvailableSlots(context.Background(), doctor.ID, nextMonday().Format("2006-01-02"))
	require.NoError(t, err)
	assert.Equal(t, []string{"09:30"}, result.Slots)
}

func TestGetAvailableSlotsPastDateIsEmpty(t *testing.T) {
	doctor := mondayMorningDoctor()
	uc := newAvailabilityUsecase(t, newFakeDoctorRepo(doctor), newFakeAppointmentRepo())

	result, err := uc.GetAvailableSlots(context.Background(), doctor.ID, "2020-01-06")
	require.NoError(t, err)
	assert.Empty(t, result.Slots)
}

func TestGetAvailableSlotsClosedDayIsEmpty(t *testing.T) {
	doctor := mondayMorningDoctor()
	uc := newAvailabilityUsecase(t, newFakeDoctorRepo(doctor), newFakeAppointmentRepo())

	// Doctor's template only opens Mondays.
	sunday := nextMonday().AddDate(0, 0, 6)

	result, err := uc.GetAvailableSlots(context.Background(), doctor.ID, sunday.Format("2006-01-02"))
	require.NoError(t, err)
	assert.Empty(t, result.Slots)
}

func TestGetAvailableSlotsUnknownDoctor(t *testing.T) {
	uc := newAvailabilityUsecase(t, newFakeDoctorRepo(), newFakeAppointmentRepo())

	_, err := uc.GetAvailableSlots(context.Background(), uuid.New(), nextMonday().Format("2006-01-02"))
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestGetAvailableSlotsArchivedDoctor(t *testing.T) {
	doctor := mondayMorningDoctor()
	archived := false
	doctor.IsActive = &archived

	uc := newAvailabilityUsecase(t, newFakeDoctorRepo(doctor), newFakeAppointmentRepo())

	_, err := uc.GetAvailableSlots(context.Background(), doctor.ID, nextMonday().Format("2006-01-02"))
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestGetAvailableSlotsInvalidDate(t *testing.T) {
	doctor := mondayMorningDoctor()
	uc := newAvailabilityUsecase(t, newFakeDoctorRepo(doctor), newFakeAppointmentRepo())

	_, err := uc.GetAvailableSlots(context.Background(), doctor.ID, "06-09-2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestOfferedSlotsUsesDefaultTemplate(t *testing.T) {
	// No working-hours override: Monday-Friday 09:00-17:00 at 30 minutes
	// yields 16 slots, the last one starting 16:30.
	doctor := &entity.Doctor{ID: uuid.New()}
	uc := newAvailabilityUsecase(t, newFakeDoctorRepo(doctor), newFakeAppointmentRepo())

	slots := uc.OfferedSlots(doctor, nextMonday())
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:30", slots[len(slots)-1])
}

func TestOfferedSlotsHonorsDoctorDuration(t *testing.T) {
	// A 60-minute doctor in a 09:00-10:00 window fits exactly one slot.
	sixty := 60
	doctor := mondayMorningDoctor()
	doctor.SlotMinutes = &sixty

	uc := newAvailabilityUsecase(t, newFakeDoctorRepo(doctor), newFakeAppointmentRepo())

	slots := uc.OfferedSlots(doctor, nextMonday())
	assert.Equal(t, []string{"09:00"}, slots)
}
