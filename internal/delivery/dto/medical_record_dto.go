package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type PrescriptionRequest struct {
	MedicineID   uuid.UUID `json:"medicine_id" validate:"required"`
	Dosage       string    `json:"dosage" validate:"required,max=100"`
	Frequency    string    `json:"frequency" validate:"required,max=100"`
	Duration     string    `json:"duration" validate:"required,max=100"`
	Instructions string    `json:"instructions" validate:"omitempty,max=2000"`
}

// CompleteAppointmentRequest closes a visit. Diagnosis may come from the
// request body or from a template; the usecase rejects the request when both
// are missing.
type CompleteAppointmentRequest struct {
	Diagnosis       string                `json:"diagnosis" validate:"omitempty,max=5000"`
	Complaints      string                `json:"complaints" validate:"omitempty,max=5000"`
	Anamnesis       string                `json:"anamnesis" validate:"omitempty,max=5000"`
	ObjectiveData   string                `json:"objective_data" validate:"omitempty,max=5000"`
	Recommendations string                `json:"recommendations" validate:"omitempty,max=5000"`
	DoctorNotes     string                `json:"doctor_notes" validate:"omitempty,max=5000"`
	TemplateID      *uuid.UUID            `json:"template_id" validate:"omitempty"`
	Prescriptions   []PrescriptionRequest `json:"prescriptions" validate:"omitempty,dive"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID           uuid.UUID `json:"id"`
	MedicineID   uuid.UUID `json:"medicine_id"`
	MedicineName string    `json:"medicine_name,omitempty"`
	Dosage       string    `json:"dosage"`
	Frequency    string    `json:"frequency"`
	Duration     string    `json:"duration"`
	Instructions string    `json:"instructions,omitempty"`
}

type MedicalRecordResponse struct {
	ID              uuid.UUID              `json:"id"`
	AppointmentID   uuid.UUID              `json:"appointment_id"`
	Complaints      string                 `json:"complaints,omitempty"`
	Anamnesis       string                 `json:"anamnesis,omitempty"`
	ObjectiveData   string                 `json:"objective_data,omitempty"`
	Diagnosis       string                 `json:"diagnosis"`
	Recommendations string                 `json:"recommendations,omitempty"`
	Prescriptions   []PrescriptionResponse `json:"prescriptions,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// CompleteAppointmentResponse reports the closed visit along with how many
// prescription lines referenced unknown medicines and were dropped.
type CompleteAppointmentResponse struct {
	Appointment          *AppointmentResponse   `json:"appointment"`
	MedicalRecord        *MedicalRecordResponse `json:"medical_record"`
	DroppedPrescriptions int                    `json:"dropped_prescriptions"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}
