package converter

import (
	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		PatientName: appointment.PatientName,
		DoctorID:    appointment.DoctorID,
		SpecialtyID: appointment.SpecialtyID,
		Date:        appointment.AppointmentDate.Format("2006-01-02"),
		Time:        appointment.StartTime,
		Reason:      appointment.Reason,
		Notes:       appointment.Notes,
		Status:      string(appointment.Status),
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}

	if appointment.Doctor.ID != uuid.Nil {
		response.Doctor = DoctorToResponse(&appointment.Doctor)
	}
	if appointment.Specialty != nil && appointment.Specialty.ID != 0 {
		response.Specialty = SpecialtyToResponse(appointment.Specialty)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		resp := AppointmentToResponse(&appointments[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
