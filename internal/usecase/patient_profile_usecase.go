package usecase

import (
	"context"

	"clinic-management-backend/internal/converter"
	"clinic-management-backend/internal/delivery/dto"
	"clinic-management-backend/internal/domain/entity"
	"clinic-management-backend/internal/domain/repository"
	"clinic-management-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientProfileUsecase interface {
	List(ctx context.Context) (*dto.PatientListResponse, error)
	Get(ctx context.Context, patientID uuid.UUID) (*dto.PatientProfileResponse, error)
	Update(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientProfileResponse, error)
}

type patientProfileUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	patientProfileRepo repository.PatientProfileRepository
	auditService       service.AuditService
}

func NewPatientProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientProfileRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) PatientProfileUsecase {
	return &patientProfileUsecase{
		db:                 db,
		log:                log,
		patientProfileRepo: patientProfileRepo,
		auditService:       auditService,
	}
}

func (u *patientProfileUsecase) List(ctx context.Context) (*dto.PatientListResponse, error) {
	profiles, err := u.patientProfileRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientProfilesToResponses(profiles),
		Total:    len(profiles),
	}, nil
}

func (u *patientProfileUsecase) Get(ctx context.Context, patientID uuid.UUID) (*dto.PatientProfileResponse, error) {
	profile, err := u.patientProfileRepo.FindByUserID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientProfileUsecase) Update(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientProfileRepo.FindByUserID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		profile.Address = req.Address
	}
	if req.Allergies != "" {
		profile.Allergies = req.Allergies
	}
	if req.ChronicDiseases != "" {
		profile.ChronicDiseases = req.ChronicDiseases
	}
	if req.BloodType != "" {
		profile.BloodType = req.BloodType
	}
	if req.InsuranceNumber != "" {
		profile.InsuranceNumber = req.InsuranceNumber
	}
	if req.EmergencyContact != "" {
		profile.EmergencyContact = req.EmergencyContact
	}

	if err := u.patientProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &patientID, entity.AuditActionProfileUpdate, "patient_profile", patientID.String(), nil, map[string]interface{}{
		"phone_number": profile.PhoneNumber,
		"blood_type":   profile.BloodType,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientProfileToResponse(profile), nil
}
