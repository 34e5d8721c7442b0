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

type DoctorHandler struct {
	Log           *logrus.Logger
	Validate      *validator.CustomValidator
	DoctorUsecase *usecase.DoctorUsecase
}

func NewDoctorHandler(log *logrus.Logger, validate *validator.CustomValidator, doctorUsecase *usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		Log:           log,
		Validate:      validate,
		DoctorUsecase: doctorUsecase,
	}
}

// List serves both the public GET /doctors directory and the back-office
// GET /admin/doctors listing. include_archived is honored only for an
// authenticated staff caller; anonymous requests always see active doctors.
func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if r.URL.Query().Get("include_archived") == "true" {
		if roleID, ok := middleware.GetRoleID(r.Context()); ok && entity.IsStaffRole(roleID) {
			activeOnly = false
		}
	}

	var specialtyID *int
	if raw := r.URL.Query().Get("specialty_id"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid specialty_id filter", nil)
			return
		}
		specialtyID = &v
	}

	doctors, err := h.DoctorUsecase.ListDoctors(r.Context(), activeOnly, specialtyID)
	if err != nil {
		h.Log.Errorf("Failed to list doctors: %+v", err)
		response.InternalServerError(w, "")
		return
	}

	response.Success(w, http.StatusOK, "", doctors)
}

func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor id", nil)
		return
	}

	doctor, err := h.DoctorUsecase.GetDoctor(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			h.Log.Errorf("Failed to load doctor: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "", doctor)
}

func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.Validate.Validate(&request); err != nil {
		response.ValidationError(w, h.Validate.FormatValidationErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(r.Context())

	doctor, err := h.DoctorUsecase.CreateDoctor(r.Context(), actorID, &request)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSpecialtyNotFound):
			response.Error(w, http.StatusBadRequest, "Specialty not found", nil)
		case errors.Is(err, usecase.ErrInvalidTemplate):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			h.Log.Errorf("Failed to create doctor: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created", doctor)
}

func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor id", nil)
		return
	}

	var request dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.Validate.Validate(&request); err != nil {
		response.ValidationError(w, h.Validate.FormatValidationErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(r.Context())

	doctor, err := h.DoctorUsecase.UpdateDoctor(r.Context(), actorID, id, &request)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrSpecialtyNotFound):
			response.Error(w, http.StatusBadRequest, "Specialty not found", nil)
		case errors.Is(err, usecase.ErrInvalidTemplate):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			h.Log.Errorf("Failed to update doctor: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated", doctor)
}

// SetActive handles PATCH /admin/doctors/{id}/active for archive/restore.
func (h *DoctorHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor id", nil)
		return
	}

	var request dto.SetUserActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.Validate.Validate(&request); err != nil {
		response.ValidationError(w, h.Validate.FormatValidationErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(r.Context())

	if err := h.DoctorUsecase.SetDoctorActive(r.Context(), actorID, id, *request.IsActive); err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			h.Log.Errorf("Failed to toggle doctor: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated", nil)
}
