package converter

import (
	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to its response DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:           doctor.ID,
		FullName:     doctor.FullName,
		SpecialtyID:  doctor.SpecialtyID,
		Biography:    doctor.Biography,
		SlotMinutes:  doctor.SlotMinutes,
		WorkingHours: doctor.WorkingHours,
		IsActive:     doctor.Active(),
		CreatedAt:    doctor.CreatedAt,
		UpdatedAt:    doctor.UpdatedAt,
	}

	if doctor.Specialty.ID != 0 {
		response.Specialty = SpecialtyToResponse(&doctor.Specialty)
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		resp := DoctorToResponse(&doctors[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
