package converter

import (
	"clinic-management-backend/internal/delivery/dto"
	"clinic-management-backend/internal/domain/entity"
)

// DiagnosisTemplateToResponse converts a DiagnosisTemplate entity to DTO
func DiagnosisTemplateToResponse(template *entity.DiagnosisTemplate) *dto.DiagnosisTemplateResponse {
	if template == nil {
		return nil
	}

	return &dto.DiagnosisTemplateResponse{
		ID:              template.ID,
		Name:            template.Name,
		Diagnosis:       template.Diagnosis,
		Recommendations: template.Recommendations,
		UsageCount:      template.UsageCount,
		CreatedAt:       template.CreatedAt,
	}
}

// DiagnosisTemplatesToResponses converts a slice of DiagnosisTemplate entities to DTOs
func DiagnosisTemplatesToResponses(templates []entity.DiagnosisTemplate) []dto.DiagnosisTemplateResponse {
	responses := make([]dto.DiagnosisTemplateResponse, len(templates))
	for i, template := range templates {
		resp := DiagnosisTemplateToResponse(&template)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
