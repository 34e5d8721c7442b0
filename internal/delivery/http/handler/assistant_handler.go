package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/service"
	"pharmacenter-api/pkg/response"
	"pharmacenter-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

type AssistantHandler struct {
	Log       *logrus.Logger
	Validate  *validator.CustomValidator
	Assistant *service.AssistantService
}

func NewAssistantHandler(log *logrus.Logger, validate *validator.CustomValidator, assistant *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		Log:       log,
		Validate:  validate,
		Assistant: assistant,
	}
}

// Chat handles POST /assistant/chat, the site's help widget backend.
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var request dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.Validate.Validate(&request); err != nil {
		response.ValidationError(w, h.Validate.FormatValidationErrors(err))
		return
	}

	reply, err := h.Assistant.Chat(r.Context(), request.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssistantDisabled):
			response.Error(w, http.StatusServiceUnavailable, "Assistant is not available", nil)
		case errors.Is(err, service.ErrAssistantUnavailable):
			response.Error(w, http.StatusBadGateway, "Assistant is temporarily unavailable", nil)
		default:
			h.Log.Errorf("Assistant chat failed: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "", &dto.ChatResponse{Reply: reply})
}
