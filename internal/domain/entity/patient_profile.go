package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	IIN              string    `gorm:"type:char(12);uniqueIndex;not null" json:"iin"`
	PhoneNumber      string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	DateOfBirth      time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender           string    `gorm:"type:char(1);not null" json:"gender"`
	Address          string    `gorm:"type:text" json:"address,omitempty"`
	Allergies        string    `gorm:"type:text" json:"allergies,omitempty"`
	ChronicDiseases  string    `gorm:"type:text" json:"chronic_diseases,omitempty"`
	BloodType        string    `gorm:"type:varchar(3)" json:"blood_type,omitempty"`
	InsuranceNumber  string    `gorm:"type:varchar(50)" json:"insurance_number,omitempty"`
	EmergencyContact string    `gorm:"type:varchar(50)" json:"emergency_contact,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Blood type values accepted by validation
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
