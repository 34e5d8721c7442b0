package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/delivery/http/middleware"
	"pharmacenter-api/internal/usecase"
	"pharmacenter-api/pkg/response"
	"pharmacenter-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	Log         *logrus.Logger
	Validate    *validator.CustomValidator
	AuthUsecase *usecase.AuthUsecase
}

func NewAuthHandler(log *logrus.Logger, validate *validator.CustomValidator, authUsecase *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		Log:         log,
		Validate:    validate,
		AuthUsecase: authUsecase,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var request dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.Validate.Validate(&request); err != nil {
		response.ValidationError(w, h.Validate.FormatValidationErrors(err))
		return
	}

	user, err := h.AuthUsecase.Register(r.Context(), &request)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			response.Conflict(w, "Email is already registered")
		default:
			h.Log.Errorf("Failed to register user: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Registration successful", user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var request dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.Validate.Validate(&request); err != nil {
		response.ValidationError(w, h.Validate.FormatValidationErrors(err))
		return
	}

	tokens, err := h.AuthUsecase.Login(r.Context(), &request)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid email or password")
		case errors.Is(err, usecase.ErrAccountDisabled):
			response.Forbidden(w, "Account is disabled")
		default:
			h.Log.Errorf("Failed to login: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", tokens)
}

func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var request dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.Validate.Validate(&request); err != nil {
		response.ValidationError(w, h.Validate.FormatValidationErrors(err))
		return
	}

	tokens, err := h.AuthUsecase.RefreshToken(r.Context(), &request)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidToken):
			response.Unauthorized(w, "Invalid or expired refresh token")
		case errors.Is(err, usecase.ErrAccountDisabled):
			response.Forbidden(w, "Account is disabled")
		default:
			h.Log.Errorf("Failed to refresh token: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Token refreshed", tokens)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	tokenID, _ := middleware.GetTokenID(r.Context())

	if err := h.AuthUsecase.Logout(r.Context(), userID, tokenID); err != nil {
		h.Log.Errorf("Failed to logout: %+v", err)
		response.InternalServerError(w, "")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	user, err := h.AuthUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "User not found")
		default:
			h.Log.Errorf("Failed to load current user: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "", user)
}

func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	users, err := h.AuthUsecase.ListUsers(r.Context(), limit, offset)
	if err != nil {
		h.Log.Errorf("Failed to list users: %+v", err)
		response.InternalServerError(w, "")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "", users, paginationMeta(page, limit, users.Total))
}

func (h *AuthHandler) SetUserActive(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user id", nil)
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

	if err := h.AuthUsecase.SetUserActive(r.Context(), actorID, targetID, *request.IsActive); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "User not found")
		default:
			h.Log.Errorf("Failed to toggle user: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "User updated", nil)
}
