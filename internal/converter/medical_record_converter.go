package converter

import (
	"clinic-management-backend/internal/delivery/dto"
	"clinic-management-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicalRecordToResponse converts a MedicalRecord entity to MedicalRecordResponse DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:              record.ID,
		AppointmentID:   record.AppointmentID,
		Complaints:      record.Complaints,
		Anamnesis:       record.Anamnesis,
		ObjectiveData:   record.ObjectiveData,
		Diagnosis:       record.Diagnosis,
		Recommendations: record.Recommendations,
		Prescriptions:   PrescriptionsToResponses(record.Prescriptions),
		CreatedAt:       record.CreatedAt,
	}
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities to DTOs
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i, record := range records {
		resp := MedicalRecordToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// PrescriptionToResponse converts a Prescription entity to PrescriptionResponse DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		ID:           prescription.ID,
		MedicineID:   prescription.MedicineID,
		Dosage:       prescription.Dosage,
		Frequency:    prescription.Frequency,
		Duration:     prescription.Duration,
		Instructions: prescription.Instructions,
	}

	if prescription.Medicine.ID != uuid.Nil {
		response.MedicineName = prescription.Medicine.Name
	}

	return response
}

// PrescriptionsToResponses converts a slice of Prescription entities to DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	if len(prescriptions) == 0 {
		return nil
	}
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		resp := PrescriptionToResponse(&prescription)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
