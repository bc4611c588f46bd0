package repository

import (
	"errors"

	"clinic-management-backend/internal/domain/entity"
	domainRepo "clinic-management-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicineRepository struct{}

func NewMedicineRepository() domainRepo.MedicineRepository {
	return &medicineRepository{}
}

func (r *medicineRepository) Create(db *gorm.DB, medicine *entity.Medicine) error {
	return db.Create(medicine).Error
}

func (r *medicineRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := db.Where("id = ?", id).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) FindAll(db *gorm.DB) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	err := db.Order("name ASC").Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Medicine{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *medicineRepository) Update(db *gorm.DB, medicine *entity.Medicine) error {
	return db.Save(medicine).Error
}

func (r *medicineRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Medicine{})
	return result.RowsAffected, result.Error
}
