package entity

import (
	"time"

	"github.com/google/uuid"
)

// DiagnosisTemplate is a reusable diagnosis a doctor can apply while
// completing an appointment
type DiagnosisTemplate struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID        uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Name            string    `gorm:"type:varchar(200);not null" json:"name"`
	Diagnosis       string    `gorm:"type:text;not null" json:"diagnosis"`
	Recommendations string    `gorm:"type:text" json:"recommendations,omitempty"`
	UsageCount      int       `gorm:"not null;default:0" json:"usage_count"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DiagnosisTemplate) TableName() string {
	return "diagnosis_templates"
}
