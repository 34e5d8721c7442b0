package converter

import (
	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/domain/entity"
)

// ContactMessageToResponse converts a ContactMessage entity to its response DTO
func ContactMessageToResponse(message *entity.ContactMessage) *dto.ContactMessageResponse {
	if message == nil {
		return nil
	}

	return &dto.ContactMessageResponse{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Phone:     message.Phone,
		Message:   message.Message,
		IsRead:    message.IsRead,
		CreatedAt: message.CreatedAt,
	}
}

// ContactMessagesToResponses converts a slice of ContactMessage entities
func ContactMessagesToResponses(messages []entity.ContactMessage) []dto.ContactMessageResponse {
	responses := make([]dto.ContactMessageResponse, len(messages))
	for i := range messages {
		resp := ContactMessageToResponse(&messages[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
