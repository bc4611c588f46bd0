package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is the aggregate root for scheduling. ScheduledAt is stored in
// UTC; partial unique indexes on (doctor_id, scheduled_at) and
// (patient_id, scheduled_at) where status='scheduled' enforce single booking
// per slot at the storage layer.
type Appointment struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	ScheduledAt time.Time         `gorm:"type:timestamptz;not null;index" json:"scheduled_at"`
	Status      AppointmentStatus `gorm:"type:appointment_status;not null;default:'scheduled';index" json:"status"`
	Notes       string            `gorm:"type:text" json:"notes,omitempty"`
	Diagnosis   *string           `gorm:"type:text" json:"diagnosis,omitempty"`
	RoomNumber  string            `gorm:"type:varchar(10)" json:"room_number,omitempty"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient       PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor        DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	MedicalRecord *MedicalRecord `gorm:"foreignKey:AppointmentID" json:"medical_record,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsScheduled checks if the appointment is still active
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCompleted checks if the appointment reached its terminal completed state
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if the appointment reached its terminal cancelled state
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
