package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdatePatientProfileRequest struct {
	PhoneNumber      string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address          string `json:"address" validate:"omitempty"`
	Allergies        string `json:"allergies" validate:"omitempty"`
	ChronicDiseases  string `json:"chronic_diseases" validate:"omitempty"`
	BloodType        string `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	InsuranceNumber  string `json:"insurance_number" validate:"omitempty,max=50"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=50"`
}

// Response DTOs

type PatientProfileResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	FullName         string    `json:"full_name,omitempty"`
	Email            string    `json:"email,omitempty"`
	IIN              string    `json:"iin"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	DateOfBirth      time.Time `json:"date_of_birth"`
	Gender           string    `json:"gender"`
	Address          string    `json:"address,omitempty"`
	Allergies        string    `json:"allergies,omitempty"`
	ChronicDiseases  string    `json:"chronic_diseases,omitempty"`
	BloodType        string    `json:"blood_type,omitempty"`
	InsuranceNumber  string    `json:"insurance_number,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientProfileResponse `json:"patients"`
	Total    int                      `json:"total"`
}
