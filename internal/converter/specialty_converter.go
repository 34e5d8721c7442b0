package converter

import (
	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/domain/entity"
)

// SpecialtyToResponse converts a Specialty entity to its response DTO
func SpecialtyToResponse(specialty *entity.Specialty) *dto.SpecialtyResponse {
	if specialty == nil {
		return nil
	}

	return &dto.SpecialtyResponse{
		ID:                 specialty.ID,
		Name:               specialty.Name,
		Description:        specialty.Description,
		DefaultSlotMinutes: specialty.DefaultSlotMinutes,
		IsActive:           specialty.Active(),
		CreatedAt:          specialty.CreatedAt,
		UpdatedAt:          specialty.UpdatedAt,
	}
}

// SpecialtiesToResponses converts a slice of Specialty entities
func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(specialties))
	for i := range specialties {
		resp := SpecialtyToResponse(&specialties[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
