package repository

import (
	"clinic-management-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.MedicalRecord, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalRecord, error)
}
