package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID    uuid.UUID `json:"doctor_id" validate:"required"`
	ScheduledAt string    `json:"scheduled_at" validate:"required"` // RFC3339
	Notes       string    `json:"notes" validate:"omitempty,max=2000"`
}

// CreateAppointmentByDoctorRequest lets a doctor book a visit for a patient
// into their own grid.
type CreateAppointmentByDoctorRequest struct {
	PatientID   uuid.UUID `json:"patient_id" validate:"required"`
	ScheduledAt string    `json:"scheduled_at" validate:"required"` // RFC3339
	Notes       string    `json:"notes" validate:"omitempty,max=2000"`
}

type ListAppointmentsRequest struct {
	StartAt string `json:"start_at" validate:"omitempty"` // YYYY-MM-DD
	EndAt   string `json:"end_at" validate:"omitempty"`   // YYYY-MM-DD
	Status  string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	Diagnosis   *string   `json:"diagnosis,omitempty"`
	RoomNumber  string    `json:"room_number,omitempty"`
	PatientName string    `json:"patient_name,omitempty"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	Specialty   string    `json:"specialty,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
