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

type DoctorProfileUsecase interface {
	List(ctx context.Context) (*dto.DoctorListResponse, error)
	Get(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorProfileResponse, error)
	Update(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error)
}

type doctorProfileUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	doctorProfileRepo repository.DoctorProfileRepository
	auditService      service.AuditService
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:                db,
		log:               log,
		doctorProfileRepo: doctorProfileRepo,
		auditService:      auditService,
	}
}

func (u *doctorProfileUsecase) List(ctx context.Context) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorProfileRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *doctorProfileUsecase) Get(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorProfileResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorProfileUsecase) Update(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	old := map[string]interface{}{
		"specialty":  profile.Specialty,
		"department": profile.Department,
		"work_start": profile.WorkStart,
		"work_end":   profile.WorkEnd,
	}

	if req.Specialty != "" {
		profile.Specialty = req.Specialty
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.WorkPhone != "" {
		profile.WorkPhone = req.WorkPhone
	}
	if req.LicenseNumber != "" {
		profile.LicenseNumber = req.LicenseNumber
	}
	if req.Department != "" {
		profile.Department = req.Department
	}
	if req.OfficeNumber != "" {
		profile.OfficeNumber = req.OfficeNumber
	}
	if req.WorkStart != "" {
		profile.WorkStart = req.WorkStart
	}
	if req.WorkEnd != "" {
		profile.WorkEnd = req.WorkEnd
	}
	if req.LunchStart != "" {
		profile.LunchStart = req.LunchStart
	}
	if req.LunchEnd != "" {
		profile.LunchEnd = req.LunchEnd
	}

	// Reject malformed or inverted working hours before they poison the
	// slot grid.
	if err := service.ValidateWorkingHours(profile.WorkStart, profile.WorkEnd, profile.LunchStart, profile.LunchEnd); err != nil {
		return nil, err
	}

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &doctorID, entity.AuditActionDoctorUpdate, "doctor_profile", doctorID.String(), old, map[string]interface{}{
		"specialty":  profile.Specialty,
		"department": profile.Department,
		"work_start": profile.WorkStart,
		"work_end":   profile.WorkEnd,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(profile), nil
}
