package dto

import "github.com/google/uuid"

// Request DTOs

type UpdateDoctorProfileRequest struct {
	Specialty       string `json:"specialty" validate:"omitempty"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	WorkPhone       string `json:"work_phone" validate:"omitempty,min=10,max=20"`
	LicenseNumber   string `json:"license_number" validate:"omitempty"`
	Department      string `json:"department" validate:"omitempty"`
	OfficeNumber    string `json:"office_number" validate:"omitempty,max=10"`
	WorkStart       string `json:"work_start" validate:"omitempty,len=5"` // HH:MM
	WorkEnd         string `json:"work_end" validate:"omitempty,len=5"`
	LunchStart      string `json:"lunch_start" validate:"omitempty,len=5"`
	LunchEnd        string `json:"lunch_end" validate:"omitempty,len=5"`
}

// Response DTOs

type DoctorProfileResponse struct {
	UserID          uuid.UUID `json:"user_id"`
	FullName        string    `json:"full_name,omitempty"`
	Email           string    `json:"email,omitempty"`
	IIN             string    `json:"iin"`
	Specialty       string    `json:"specialty"`
	ExperienceYears int       `json:"experience_years"`
	WorkPhone       string    `json:"work_phone,omitempty"`
	LicenseNumber   string    `json:"license_number,omitempty"`
	Department      string    `json:"department,omitempty"`
	OfficeNumber    string    `json:"office_number,omitempty"`
	WorkStart       string    `json:"work_start"`
	WorkEnd         string    `json:"work_end"`
	LunchStart      string    `json:"lunch_start"`
	LunchEnd        string    `json:"lunch_end"`
}

type DoctorListResponse struct {
	Doctors []DoctorProfileResponse `json:"doctors"`
	Total   int                     `json:"total"`
}
