package handler

import (
	"errors"
	"net/http"

	"pharmacenter-api/internal/usecase"
	"pharmacenter-api/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AvailabilityHandler struct {
	Log                 *logrus.Logger
	AvailabilityUsecase *usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(log *logrus.Logger, availabilityUsecase *usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		Log:                 log,
		AvailabilityUsecase: availabilityUsecase,
	}
}

// GetAvailability handles GET /availability?doctor_id=...&date=YYYY-MM-DD.
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(r.URL.Query().Get("doctor_id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid or missing doctor_id", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "Missing date parameter", nil)
		return
	}

	availability, err := h.AvailabilityUsecase.GetAvailableSlots(r.Context(), doctorID, date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			response.Error(w, http.StatusBadRequest, "Date must be in YYYY-MM-DD format", nil)
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			h.Log.Errorf("Failed to compute availability: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "", availability)
}
