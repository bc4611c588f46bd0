package repository

import (
	"clinic-management-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByMedicalRecordID(db *gorm.DB, medicalRecordID uuid.UUID) ([]entity.Prescription, error)
}
