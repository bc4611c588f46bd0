package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord is the clinical documentation produced when an appointment is
// completed. One-to-one with the appointment, created atomically with its
// status transition.
type MedicalRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	Complaints      string    `gorm:"type:text" json:"complaints,omitempty"`
	Anamnesis       string    `gorm:"type:text" json:"anamnesis,omitempty"`
	ObjectiveData   string    `gorm:"type:text" json:"objective_data,omitempty"`
	Diagnosis       string    `gorm:"type:text;not null" json:"diagnosis"`
	Recommendations string    `gorm:"type:text" json:"recommendations,omitempty"`
	DoctorNotes     string    `gorm:"type:text" json:"-"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment   *Appointment   `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Prescriptions []Prescription `gorm:"foreignKey:MedicalRecordID" json:"prescriptions,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
