package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID             uuid.UUID               `json:"id"`
	Email          string                  `json:"email"`
	FullName       string                  `json:"full_name"`
	Role           string                  `json:"role"`
	DoctorProfile  *DoctorProfileResponse  `json:"doctor_profile,omitempty"`
	PatientProfile *PatientProfileResponse `json:"patient_profile,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// Role-specific Registration Request DTOs

type RegisterPatientRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=2"`
	IIN         string `json:"iin" validate:"required,len=12,numeric"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Gender      string `json:"gender" validate:"required,oneof=M F"`
	Address     string `json:"address" validate:"omitempty"`
}

// RegisterDoctorRequest is accepted from admins only.
type RegisterDoctorRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	FullName        string `json:"full_name" validate:"required,min=2"`
	IIN             string `json:"iin" validate:"required,len=12,numeric"`
	Specialty       string `json:"specialty" validate:"required"`
	ExperienceYears int    `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	WorkPhone       string `json:"work_phone" validate:"omitempty,min=10,max=20"`
	LicenseNumber   string `json:"license_number" validate:"omitempty"`
	Department      string `json:"department" validate:"omitempty"`
	OfficeNumber    string `json:"office_number" validate:"omitempty,max=10"`
	WorkStart       string `json:"work_start" validate:"omitempty,len=5"` // HH:MM
	WorkEnd         string `json:"work_end" validate:"omitempty,len=5"`
	LunchStart      string `json:"lunch_start" validate:"omitempty,len=5"`
	LunchEnd        string `json:"lunch_end" validate:"omitempty,len=5"`
}
