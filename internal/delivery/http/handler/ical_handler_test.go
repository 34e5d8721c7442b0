package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/internal/service"
	"pharmacenter-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newICalHandler(t *testing.T, appointmentRepo *stubAppointmentRepo) *ICalHandler {
	t.Helper()

	uc := usecase.NewFeedUsecase(
		newTestDB(t),
		newTestLogger(),
		appointmentRepo,
		service.NewICalService("pharmacenter", 30),
		newTestSlotCache(),
	)
	return NewICalHandler(newTestLogger(), uc)
}

func feedFixture(doctorID uuid.UUID) entity.Appointment {
	return entity.Appointment{
		ID:              uuid.New(),
		PatientName:     "Pat Dupont",
		DoctorID:        doctorID,
		AppointmentDate: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		Reason:          "Annual checkup",
		Status:          entity.AppointmentStatusConfirmed,
		UpdatedAt:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetFeed(t *testing.T) {
	doctorID := uuid.New()
	appointment := feedFixture(doctorID)
	h := newICalHandler(t, &stubAppointmentRepo{filterResult: []entity.Appointment{appointment}})

	req := httptest.NewRequest(http.MethodGet, "/ical/calendar.ics", nil)
	rec := httptest.NewRecorder()

	h.GetFeed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR"))
	assert.Contains(t, body, appointment.ID.String()+"@pharmacenter")
}

func TestGetFeedBadDoctorFilter(t *testing.T) {
	h := newICalHandler(t, &stubAppointmentRepo{})

	req := httptest.NewRequest(http.MethodGet, "/ical/calendar.ics?doctor_id=nope", nil)
	rec := httptest.NewRecorder()

	h.GetFeed(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFeedBadDateFilter(t *testing.T) {
	h := newICalHandler(t, &stubAppointmentRepo{})

	req := httptest.NewRequest(http.MethodGet, "/ical/calendar.ics?from=07-09-2026", nil)
	rec := httptest.NewRecorder()

	h.GetFeed(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFeedUnknownDoctorIsEmptyCalendar(t *testing.T) {
	// A filter naming nothing returns 200 with an empty calendar, never 404.
	h := newICalHandler(t, &stubAppointmentRepo{filterResult: []entity.Appointment{feedFixture(uuid.New())}})

	req := httptest.NewRequest(http.MethodGet, "/ical/calendar.ics?doctor_id="+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	h.GetFeed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.NotContains(t, body, "BEGIN:VEVENT")
}

func TestGetDoctorFeed(t *testing.T) {
	doctorID := uuid.New()
	mine := feedFixture(doctorID)
	other := feedFixture(uuid.New())
	h := newICalHandler(t, &stubAppointmentRepo{filterResult: []entity.Appointment{mine, other}})

	req := httptest.NewRequest(http.MethodGet, "/ical/doctor/"+doctorID.String()+"/calendar.ics", nil)
	req = mux.SetURLVars(req, map[string]string{"id": doctorID.String()})
	rec := httptest.NewRecorder()

	h.GetDoctorFeed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, mine.ID.String()+"@pharmacenter")
	assert.NotContains(t, body, other.ID.String()+"@pharmacenter")
}

func TestGetDoctorFeedBadID(t *testing.T) {
	h := newICalHandler(t, &stubAppointmentRepo{})

	req := httptest.NewRequest(http.MethodGet, "/ical/doctor/nope/calendar.ics", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})
	rec := httptest.NewRecorder()

	h.GetDoctorFeed(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
