package converter

import (
	"clinic-management-backend/internal/delivery/dto"
	"clinic-management-backend/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorProfileResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorProfileResponse{
		UserID:          profile.UserID,
		FullName:        profile.User.FullName,
		Email:           profile.User.Email,
		IIN:             profile.IIN,
		Specialty:       profile.Specialty,
		ExperienceYears: profile.ExperienceYears,
		WorkPhone:       profile.WorkPhone,
		LicenseNumber:   profile.LicenseNumber,
		Department:      profile.Department,
		OfficeNumber:    profile.OfficeNumber,
		WorkStart:       profile.WorkStart,
		WorkEnd:         profile.WorkEnd,
		LunchStart:      profile.LunchStart,
		LunchEnd:        profile.LunchEnd,
	}
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorProfileResponse {
	responses := make([]dto.DoctorProfileResponse, len(profiles))
	for i, profile := range profiles {
		resp := DoctorProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
