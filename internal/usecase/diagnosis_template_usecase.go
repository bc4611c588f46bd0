package usecase

import (
	"context"

	"clinic-management-backend/internal/converter"
	"clinic-management-backend/internal/delivery/dto"
	"clinic-management-backend/internal/domain/entity"
	"clinic-management-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DiagnosisTemplateUsecase manages a doctor's personal reusable diagnoses.
type DiagnosisTemplateUsecase interface {
	Create(ctx context.Context, doctorID uuid.UUID, req *dto.CreateDiagnosisTemplateRequest) (*dto.DiagnosisTemplateResponse, error)
	ListMine(ctx context.Context, doctorID uuid.UUID) (*dto.DiagnosisTemplateListResponse, error)
	Delete(ctx context.Context, doctorID uuid.UUID, id uuid.UUID) error
}

type diagnosisTemplateUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	templateRepo repository.DiagnosisTemplateRepository
}

func NewDiagnosisTemplateUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	templateRepo repository.DiagnosisTemplateRepository,
) DiagnosisTemplateUsecase {
	return &diagnosisTemplateUsecase{
		db:           db,
		log:          log,
		templateRepo: templateRepo,
	}
}

func (u *diagnosisTemplateUsecase) Create(ctx context.Context, doctorID uuid.UUID, req *dto.CreateDiagnosisTemplateRequest) (*dto.DiagnosisTemplateResponse, error) {
	template := &entity.DiagnosisTemplate{
		DoctorID:        doctorID,
		Name:            req.Name,
		Diagnosis:       req.Diagnosis,
		Recommendations: req.Recommendations,
	}

	if err := u.templateRepo.Create(u.db.WithContext(ctx), template); err != nil {
		u.log.Warnf("Failed to create diagnosis template: %+v", err)
		return nil, err
	}

	return converter.DiagnosisTemplateToResponse(template), nil
}

func (u *diagnosisTemplateUsecase) ListMine(ctx context.Context, doctorID uuid.UUID) (*dto.DiagnosisTemplateListResponse, error) {
	templates, err := u.templateRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list diagnosis templates: %+v", err)
		return nil, err
	}

	return &dto.DiagnosisTemplateListResponse{
		Templates: converter.DiagnosisTemplatesToResponses(templates),
		Total:     len(templates),
	}, nil
}

func (u *diagnosisTemplateUsecase) Delete(ctx context.Context, doctorID uuid.UUID, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	template, err := u.templateRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis template: %+v", err)
		return err
	}
	// Owner only; other doctors never learn the template exists.
	if template == nil || template.DoctorID != doctorID {
		return ErrTemplateNotFound
	}

	rows, err := u.templateRepo.Delete(db, id)
	if err != nil {
		u.log.Warnf("Failed to delete diagnosis template: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrTemplateNotFound
	}

	return nil
}
