package repository

import (
	"clinic-management-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicineRepository interface {
	Create(db *gorm.DB, medicine *entity.Medicine) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Medicine, error)
	FindAll(db *gorm.DB) ([]entity.Medicine, error)
	Exists(db *gorm.DB, id uuid.UUID) (bool, error)
	Update(db *gorm.DB, medicine *entity.Medicine) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
