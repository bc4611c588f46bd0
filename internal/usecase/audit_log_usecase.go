package usecase

import (
	"context"

	"clinic-management-backend/internal/converter"
	"clinic-management-backend/internal/delivery/dto"
	"clinic-management-backend/internal/domain/repository"
	"clinic-management-backend/pkg/response"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	List(ctx context.Context, page, limit int) ([]dto.AuditLogResponse, *response.Meta, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) List(ctx context.Context, page, limit int) ([]dto.AuditLogResponse, *response.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	logs, total, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	meta := &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	return converter.AuditLogsToResponses(logs), meta, nil
}
