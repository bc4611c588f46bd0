package repository

import (
	"time"

	"clinic-management-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)

	// Conflict checker queries: exact timestamp, status=scheduled only.
	ExistsScheduledForDoctorAt(db *gorm.DB, doctorID uuid.UUID, at time.Time) (bool, error)
	ExistsScheduledForPatientAt(db *gorm.DB, patientID uuid.UUID, at time.Time) (bool, error)

	// Batched lookup backing the availability query, [from, to) in UTC.
	FindScheduledByDoctorBetween(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)

	// Guarded transitions; rows affected = 0 means the status guard failed.
	MarkCompleted(db *gorm.DB, id uuid.UUID, diagnosis string) (int64, error)
	CancelScheduled(db *gorm.DB, id uuid.UUID) (int64, error)
	DeleteScheduled(db *gorm.DB, id uuid.UUID) (int64, error)

	// Bulk reap of stale scheduled appointments, cutoff exclusive.
	CancelMissedByDoctor(db *gorm.DB, doctorID uuid.UUID, before time.Time) (int64, error)
}
