package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailabilityHandler(t *testing.T, doctorRepo *stubDoctorRepo, appointmentRepo *stubAppointmentRepo) *AvailabilityHandler {
	t.Helper()

	uc := usecase.NewAvailabilityUsecase(
		newTestDB(t),
		newTestLogger(),
		testBookingConfig(),
		doctorRepo,
		appointmentRepo,
		newTestSlotCache(),
	)
	return NewAvailabilityHandler(newTestLogger(), uc)
}

func TestGetAvailabilityOK(t *testing.T) {
	doctor := &entity.Doctor{
		ID: uuid.New(),
		WorkingHours: entity.WeekTemplate{
			"monday": {{Start: "09:00", End: "10:00"}},
		},
	}
	h := newAvailabilityHandler(t, newStubDoctorRepo(doctor), &stubAppointmentRepo{activeTimes: []string{"09:00"}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?doctor_id="+doctor.ID.String()+"&date="+nextMonday().Format("2006-01-02"), nil)
	rec := httptest.NewRecorder()

	h.GetAvailability(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Slots []string `json:"slots"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, []string{"09:30"}, body.Data.Slots)
}

func TestGetAvailabilityBadDoctorID(t *testing.T) {
	h := newAvailabilityHandler(t, newStubDoctorRepo(), &stubAppointmentRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?doctor_id=not-a-uuid&date=2026-09-07", nil)
	rec := httptest.NewRecorder()

	h.GetAvailability(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailabilityMissingDate(t *testing.T) {
	h := newAvailabilityHandler(t, newStubDoctorRepo(), &stubAppointmentRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?doctor_id="+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	h.GetAvailability(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailabilityUnknownDoctor(t *testing.T) {
	h := newAvailabilityHandler(t, newStubDoctorRepo(), &stubAppointmentRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?doctor_id="+uuid.NewString()+"&date=2026-09-07", nil)
	rec := httptest.NewRecorder()

	h.GetAvailability(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
