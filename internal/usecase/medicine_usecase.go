package usecase

import (
	"context"
	"errors"

	"clinic-management-backend/internal/converter"
	"clinic-management-backend/internal/delivery/dto"
	"clinic-management-backend/internal/domain/entity"
	"clinic-management-backend/internal/domain/repository"
	"clinic-management-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicineNotFound = errors.New("medicine not found")
	ErrMedicineInUse    = errors.New("medicine is referenced by prescriptions")
)

type MedicineUsecase interface {
	Create(ctx context.Context, adminID uuid.UUID, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error)
	List(ctx context.Context) (*dto.MedicineListResponse, error)
	Update(ctx context.Context, adminID uuid.UUID, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	Delete(ctx context.Context, adminID uuid.UUID, id uuid.UUID) error
}

type medicineUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
	auditService service.AuditService
}

func NewMedicineUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medicineRepo repository.MedicineRepository,
	auditService service.AuditService,
) MedicineUsecase {
	return &medicineUsecase{
		db:           db,
		log:          log,
		medicineRepo: medicineRepo,
		auditService: auditService,
	}
}

func (u *medicineUsecase) Create(ctx context.Context, adminID uuid.UUID, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medicine := &entity.Medicine{
		Name:                 req.Name,
		Description:          req.Description,
		Price:                req.Price,
		PrescriptionRequired: req.PrescriptionRequired,
		SideEffects:          req.SideEffects,
		Contraindications:    req.Contraindications,
	}

	if err := u.medicineRepo.Create(tx, medicine); err != nil {
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, tx, &adminID, entity.AuditActionMedicineCreate, "medicine", medicine.ID.String(), map[string]interface{}{
		"name":  medicine.Name,
		"price": medicine.Price.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) List(ctx context.Context) (*dto.MedicineListResponse, error) {
	medicines, err := u.medicineRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list medicines: %+v", err)
		return nil, err
	}

	return &dto.MedicineListResponse{
		Medicines: converter.MedicinesToResponses(medicines),
		Total:     len(medicines),
	}, nil
}

func (u *medicineUsecase) Update(ctx context.Context, adminID uuid.UUID, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medicine, err := u.medicineRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	if req.Name != "" {
		medicine.Name = req.Name
	}
	if req.Description != nil {
		medicine.Description = *req.Description
	}
	if req.Price != nil {
		medicine.Price = *req.Price
	}
	if req.PrescriptionRequired != nil {
		medicine.PrescriptionRequired = *req.PrescriptionRequired
	}
	if req.SideEffects != nil {
		medicine.SideEffects = *req.SideEffects
	}
	if req.Contraindications != nil {
		medicine.Contraindications = *req.Contraindications
	}

	if err := u.medicineRepo.Update(tx, medicine); err != nil {
		u.log.Warnf("Failed to update medicine: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionMedicineUpdate, "medicine", id.String(), nil, map[string]interface{}{
		"name":  medicine.Name,
		"price": medicine.Price.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) Delete(ctx context.Context, adminID uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medicine, err := u.medicineRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return err
	}
	if medicine == nil {
		return ErrMedicineNotFound
	}

	rows, err := u.medicineRepo.Delete(tx, id)
	if err != nil {
		// Prescriptions keep history; a referenced medicine cannot go.
		if isForeignKeyError(err, "medicine") {
			return ErrMedicineInUse
		}
		u.log.Warnf("Failed to delete medicine: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrMedicineNotFound
	}

	u.auditService.LogDelete(ctx, tx, &adminID, entity.AuditActionMedicineDelete, "medicine", id.String(), map[string]interface{}{
		"name": medicine.Name,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
