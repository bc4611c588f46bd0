package converter

import (
	"clinic-management-backend/internal/delivery/dto"
	"clinic-management-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		DoctorID:    appointment.DoctorID,
		ScheduledAt: appointment.ScheduledAt,
		Status:      string(appointment.Status),
		Notes:       appointment.Notes,
		Diagnosis:   appointment.Diagnosis,
		RoomNumber:  appointment.RoomNumber,
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}

	// Include party info if preloaded
	if appointment.Patient.UserID != uuid.Nil {
		response.PatientName = appointment.Patient.User.FullName
	}
	if appointment.Doctor.UserID != uuid.Nil {
		response.DoctorName = appointment.Doctor.User.FullName
		response.Specialty = appointment.Doctor.Specialty
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
