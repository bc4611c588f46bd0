package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data, including the
// working-hours descriptor the slot generator walks.
type DoctorProfile struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	IIN             string    `gorm:"type:char(12);uniqueIndex;not null" json:"iin"`
	Specialty       string    `gorm:"type:varchar(200);not null;index" json:"specialty"`
	ExperienceYears int       `gorm:"not null;default:0" json:"experience_years"`
	WorkPhone       string    `gorm:"type:varchar(20)" json:"work_phone,omitempty"`
	LicenseNumber   string    `gorm:"type:varchar(50)" json:"license_number,omitempty"`
	Department      string    `gorm:"type:varchar(100)" json:"department,omitempty"`
	OfficeNumber    string    `gorm:"type:varchar(10)" json:"office_number,omitempty"`

	// Working hours, HH:MM. Empty values fall back to the clinic defaults.
	WorkStart  string `gorm:"type:varchar(5);not null;default:'09:00'" json:"work_start"`
	WorkEnd    string `gorm:"type:varchar(5);not null;default:'18:00'" json:"work_end"`
	LunchStart string `gorm:"type:varchar(5);not null;default:'13:00'" json:"lunch_start"`
	LunchEnd   string `gorm:"type:varchar(5);not null;default:'14:00'" json:"lunch_end"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
