package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/delivery/http/middleware"
	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/internal/usecase"
	"pharmacenter-api/pkg/response"
	"pharmacenter-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type AppointmentHandler struct {
	Log                *logrus.Logger
	Validate           *validator.CustomValidator
	AppointmentUsecase *usecase.AppointmentUsecase
}

func NewAppointmentHandler(log *logrus.Logger, validate *validator.CustomValidator, appointmentUsecase *usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{
		Log:                log,
		Validate:           validate,
		AppointmentUsecase: appointmentUsecase,
	}
}

// Create handles POST /appointments. A 409 means the slot was won by
// another booking between the availability read and this insert.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var request dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.Validate.Validate(&request); err != nil {
		response.ValidationError(w, h.Validate.FormatValidationErrors(err))
		return
	}

	appointment, err := h.AppointmentUsecase.CreateAppointment(r.Context(), userID, &request)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			response.Error(w, http.StatusBadRequest, "Date must be in YYYY-MM-DD format", nil)
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrUserNotFound):
			response.Unauthorized(w, "Account not found or disabled")
		case errors.Is(err, usecase.ErrPastSlot):
			response.UnprocessableEntity(w, "Cannot book a slot in the past")
		case errors.Is(err, usecase.ErrSlotNotOffered):
			response.UnprocessableEntity(w, "Requested time is not an offered slot")
		case errors.Is(err, usecase.ErrSlotTaken):
			response.Conflict(w, "Slot is already booked")
		default:
			h.Log.Errorf("Failed to create appointment: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked", appointment)
}

// UpdateStatus handles PATCH /appointments/{id}/status.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	roleID, _ := middleware.GetRoleID(r.Context())

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id", nil)
		return
	}

	var request dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.Validate.Validate(&request); err != nil {
		response.ValidationError(w, h.Validate.FormatValidationErrors(err))
		return
	}

	appointment, err := h.AppointmentUsecase.UpdateStatus(r.Context(), userID, roleID, appointmentID, &request)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrNotOwned):
			response.Forbidden(w, "Appointment belongs to another patient")
		case errors.Is(err, usecase.ErrInvalidStatus):
			response.Error(w, http.StatusBadRequest, "Unknown appointment status", nil)
		case errors.Is(err, usecase.ErrInvalidTransition):
			response.UnprocessableEntity(w, "Status transition not allowed")
		default:
			h.Log.Errorf("Failed to update appointment status: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated", appointment)
}

// GetMine handles GET /appointments/me.
func (h *AppointmentHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	appointments, err := h.AppointmentUsecase.GetMyAppointments(r.Context(), userID)
	if err != nil {
		h.Log.Errorf("Failed to list own appointments: %+v", err)
		response.InternalServerError(w, "")
		return
	}

	response.Success(w, http.StatusOK, "", appointments)
}

// List handles the back-office GET /admin/appointments with filters.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := appointmentFilterFromQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	page, limit, offset := parsePagination(r)

	appointments, err := h.AppointmentUsecase.ListAppointments(r.Context(), filter, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			response.Error(w, http.StatusBadRequest, "Date filters must be in YYYY-MM-DD format", nil)
		default:
			h.Log.Errorf("Failed to list appointments: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "", appointments, paginationMeta(page, limit, appointments.Total))
}

func appointmentFilterFromQuery(r *http.Request) (*entity.AppointmentFilter, error) {
	filter := &entity.AppointmentFilter{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	if raw := r.URL.Query().Get("doctor_id"); raw != "" {
		doctorID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("invalid doctor_id filter")
		}
		filter.DoctorID = &doctorID
	}
	if raw := r.URL.Query().Get("specialty_id"); raw != "" {
		specialtyID, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("invalid specialty_id filter")
		}
		filter.SpecialtyID = &specialtyID
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := entity.AppointmentStatus(raw)
		if !entity.ValidStatus(status) {
			return nil, errors.New("invalid status filter")
		}
		filter.Statuses = []entity.AppointmentStatus{status}
	}

	return filter, nil
}
