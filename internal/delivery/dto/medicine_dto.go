package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateMedicineRequest struct {
	Name                 string          `json:"name" validate:"required,min=2,max=200"`
	Description          string          `json:"description" validate:"omitempty"`
	Price                decimal.Decimal `json:"price" validate:"omitempty"`
	PrescriptionRequired bool            `json:"prescription_required"`
	SideEffects          string          `json:"side_effects" validate:"omitempty"`
	Contraindications    string          `json:"contraindications" validate:"omitempty"`
}

type UpdateMedicineRequest struct {
	Name                 string           `json:"name" validate:"omitempty,min=2,max=200"`
	Description          *string          `json:"description" validate:"omitempty"`
	Price                *decimal.Decimal `json:"price" validate:"omitempty"`
	PrescriptionRequired *bool            `json:"prescription_required" validate:"omitempty"`
	SideEffects          *string          `json:"side_effects" validate:"omitempty"`
	Contraindications    *string          `json:"contraindications" validate:"omitempty"`
}

// Response DTOs

type MedicineResponse struct {
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description,omitempty"`
	Price                decimal.Decimal `json:"price"`
	PrescriptionRequired bool            `json:"prescription_required"`
	SideEffects          string          `json:"side_effects,omitempty"`
	Contraindications    string          `json:"contraindications,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

type MedicineListResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
	Total     int                `json:"total"`
}
