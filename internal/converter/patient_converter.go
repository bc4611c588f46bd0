package converter

import (
	"clinic-management-backend/internal/delivery/dto"
	"clinic-management-backend/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity to PatientProfileResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientProfileResponse{
		UserID:           profile.UserID,
		FullName:         profile.User.FullName,
		Email:            profile.User.Email,
		IIN:              profile.IIN,
		PhoneNumber:      profile.PhoneNumber,
		DateOfBirth:      profile.DateOfBirth,
		Gender:           profile.Gender,
		Address:          profile.Address,
		Allergies:        profile.Allergies,
		ChronicDiseases:  profile.ChronicDiseases,
		BloodType:        profile.BloodType,
		InsuranceNumber:  profile.InsuranceNumber,
		EmergencyContact: profile.EmergencyContact,
	}
}

// PatientProfilesToResponses converts a slice of PatientProfile entities to DTOs
func PatientProfilesToResponses(profiles []entity.PatientProfile) []dto.PatientProfileResponse {
	responses := make([]dto.PatientProfileResponse, len(profiles))
	for i, profile := range profiles {
		resp := PatientProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
