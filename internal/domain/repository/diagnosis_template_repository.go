package repository

import (
	"clinic-management-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiagnosisTemplateRepository interface {
	Create(db *gorm.DB, template *entity.DiagnosisTemplate) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.DiagnosisTemplate, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DiagnosisTemplate, error)
	IncrementUsage(db *gorm.DB, id uuid.UUID) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
