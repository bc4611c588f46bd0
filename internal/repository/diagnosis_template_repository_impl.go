package repository

import (
	"errors"

	"clinic-management-backend/internal/domain/entity"
	domainRepo "clinic-management-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type diagnosisTemplateRepository struct{}

func NewDiagnosisTemplateRepository() domainRepo.DiagnosisTemplateRepository {
	return &diagnosisTemplateRepository{}
}

func (r *diagnosisTemplateRepository) Create(db *gorm.DB, template *entity.DiagnosisTemplate) error {
	return db.Create(template).Error
}

func (r *diagnosisTemplateRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DiagnosisTemplate, error) {
	var template entity.DiagnosisTemplate
	err := db.Where("id = ?", id).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *diagnosisTemplateRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DiagnosisTemplate, error) {
	var templates []entity.DiagnosisTemplate
	err := db.Where("doctor_id = ?", doctorID).
		Order("usage_count DESC, name ASC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *diagnosisTemplateRepository) IncrementUsage(db *gorm.DB, id uuid.UUID) error {
	return db.Model(&entity.DiagnosisTemplate{}).
		Where("id = ?", id).
		Update("usage_count", gorm.Expr("usage_count + 1")).Error
}

func (r *diagnosisTemplateRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.DiagnosisTemplate{})
	return result.RowsAffected, result.Error
}
