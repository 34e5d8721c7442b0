package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/delivery/http/middleware"
	"pharmacenter-api/internal/usecase"
	"pharmacenter-api/pkg/response"
	"pharmacenter-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type SpecialtyHandler struct {
	Log              *logrus.Logger
	Validate         *validator.CustomValidator
	SpecialtyUsecase *usecase.SpecialtyUsecase
}

func NewSpecialtyHandler(log *logrus.Logger, validate *validator.CustomValidator, specialtyUsecase *usecase.SpecialtyUsecase) *SpecialtyHandler {
	return &SpecialtyHandler{
		Log:              log,
		Validate:         validate,
		SpecialtyUsecase: specialtyUsecase,
	}
}

func (h *SpecialtyHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("include_archived") != "true"

	specialties, err := h.SpecialtyUsecase.ListSpecialties(r.Context(), activeOnly)
	if err != nil {
		h.Log.Errorf("Failed to list specialties: %+v", err)
		response.InternalServerError(w, "")
		return
	}

	response.Success(w, http.StatusOK, "", specialties)
}

func (h *SpecialtyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialty id", nil)
		return
	}

	specialty, err := h.SpecialtyUsecase.GetSpecialty(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSpecialtyNotFound):
			response.NotFound(w, "Specialty not found")
		default:
			h.Log.Errorf("Failed to load specialty: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "", specialty)
}

func (h *SpecialtyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request dto.CreateSpecialtyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.Validate.Validate(&request); err != nil {
		response.ValidationError(w, h.Validate.FormatValidationErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(r.Context())

	specialty, err := h.SpecialtyUsecase.CreateSpecialty(r.Context(), actorID, &request)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSpecialtyNameTaken):
			response.Conflict(w, "Specialty name already exists")
		default:
			h.Log.Errorf("Failed to create specialty: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Specialty created", specialty)
}

func (h *SpecialtyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialty id", nil)
		return
	}

	var request dto.UpdateSpecialtyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.Validate.Validate(&request); err != nil {
		response.ValidationError(w, h.Validate.FormatValidationErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(r.Context())

	specialty, err := h.SpecialtyUsecase.UpdateSpecialty(r.Context(), actorID, id, &request)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSpecialtyNotFound):
			response.NotFound(w, "Specialty not found")
		case errors.Is(err, usecase.ErrSpecialtyNameTaken):
			response.Conflict(w, "Specialty name already exists")
		default:
			h.Log.Errorf("Failed to update specialty: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialty updated", specialty)
}
