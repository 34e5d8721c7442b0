package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pharmacenter-api/config"
	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/usecase"
	"pharmacenter-api/pkg/response"
	"pharmacenter-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ContactMessageHandler struct {
	Log            *logrus.Logger
	Validate       *validator.CustomValidator
	MessageUsecase *usecase.ContactMessageUsecase
	Contact        config.ContactConfig
}

func NewContactMessageHandler(log *logrus.Logger, validate *validator.CustomValidator, messageUsecase *usecase.ContactMessageUsecase, contact config.ContactConfig) *ContactMessageHandler {
	return &ContactMessageHandler{
		Log:            log,
		Validate:       validate,
		MessageUsecase: messageUsecase,
		Contact:        contact,
	}
}

// Info handles GET /contact, the public contact card.
func (h *ContactMessageHandler) Info(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "", dto.ContactInfoResponse{
		Email: h.Contact.Email,
		Phone: h.Contact.Phone,
	})
}

// Submit handles the public POST /contact form.
func (h *ContactMessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var request dto.CreateContactMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.Validate.Validate(&request); err != nil {
		response.ValidationError(w, h.Validate.FormatValidationErrors(err))
		return
	}

	message, err := h.MessageUsecase.SubmitMessage(r.Context(), &request)
	if err != nil {
		h.Log.Errorf("Failed to store contact message: %+v", err)
		response.InternalServerError(w, "")
		return
	}

	response.Success(w, http.StatusCreated, "Message received", message)
}

func (h *ContactMessageHandler) List(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"
	page, limit, offset := parsePagination(r)

	messages, err := h.MessageUsecase.ListMessages(r.Context(), unreadOnly, limit, offset)
	if err != nil {
		h.Log.Errorf("Failed to list contact messages: %+v", err)
		response.InternalServerError(w, "")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "", messages, paginationMeta(page, limit, messages.Total))
}

func (h *ContactMessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid message id", nil)
		return
	}

	if err := h.MessageUsecase.MarkMessageRead(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrMessageNotFound):
			response.NotFound(w, "Message not found")
		default:
			h.Log.Errorf("Failed to mark message read: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Message marked as read", nil)
}

func (h *ContactMessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid message id", nil)
		return
	}

	if err := h.MessageUsecase.DeleteMessage(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrMessageNotFound):
			response.NotFound(w, "Message not found")
		default:
			h.Log.Errorf("Failed to delete message: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Message deleted", nil)
}
