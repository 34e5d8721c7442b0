package handler

import (
	"errors"
	"net/http"
	"strconv"

	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/internal/usecase"
	"pharmacenter-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ICalHandler struct {
	Log         *logrus.Logger
	FeedUsecase *usecase.FeedUsecase
}

func NewICalHandler(log *logrus.Logger, feedUsecase *usecase.FeedUsecase) *ICalHandler {
	return &ICalHandler{
		Log:         log,
		FeedUsecase: feedUsecase,
	}
}

// GetFeed handles GET /ical/calendar.ics with optional doctor_id,
// specialty_id, from and to filters. Filters naming nothing yield an empty
// calendar, not an error.
func (h *ICalHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	filter := &entity.AppointmentFilter{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	if raw := r.URL.Query().Get("doctor_id"); raw != "" {
		doctorID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid doctor_id filter", nil)
			return
		}
		filter.DoctorID = &doctorID
	}
	if raw := r.URL.Query().Get("specialty_id"); raw != "" {
		specialtyID, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid specialty_id filter", nil)
			return
		}
		filter.SpecialtyID = &specialtyID
	}

	h.serveFeed(w, r, filter)
}

// GetDoctorFeed handles GET /ical/doctor/{id}/calendar.ics, the per-doctor
// subscription URL published on the doctor's profile page.
func (h *ICalHandler) GetDoctorFeed(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor id", nil)
		return
	}

	h.serveFeed(w, r, &entity.AppointmentFilter{DoctorID: &doctorID})
}

func (h *ICalHandler) serveFeed(w http.ResponseWriter, r *http.Request, filter *entity.AppointmentFilter) {
	document, err := h.FeedUsecase.GenerateFeed(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			response.Error(w, http.StatusBadRequest, "Date filters must be in YYYY-MM-DD format", nil)
		default:
			h.Log.Errorf("Failed to generate calendar feed: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(document))
}
