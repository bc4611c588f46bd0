package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDiagnosisTemplateRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=200"`
	Diagnosis       string `json:"diagnosis" validate:"required,max=5000"`
	Recommendations string `json:"recommendations" validate:"omitempty,max=5000"`
}

// Response DTOs

type DiagnosisTemplateResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Diagnosis       string    `json:"diagnosis"`
	Recommendations string    `json:"recommendations,omitempty"`
	UsageCount      int       `json:"usage_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type DiagnosisTemplateListResponse struct {
	Templates []DiagnosisTemplateResponse `json:"templates"`
	Total     int                         `json:"total"`
}
