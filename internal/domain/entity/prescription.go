package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription references a medicine catalog entry from a medical record.
// Created only alongside its parent record.
type Prescription struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MedicalRecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"medical_record_id"`
	MedicineID      uuid.UUID `gorm:"type:uuid;not null;index" json:"medicine_id"`
	Dosage          string    `gorm:"type:varchar(100);not null" json:"dosage"`
	Frequency       string    `gorm:"type:varchar(100);not null" json:"frequency"`
	Duration        string    `gorm:"type:varchar(100);not null" json:"duration"`
	Instructions    string    `gorm:"type:text" json:"instructions,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Medicine Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
