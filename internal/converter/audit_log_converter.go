package converter

import (
	"clinic-management-backend/internal/delivery/dto"
	"clinic-management-backend/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(auditLog *entity.AuditLog) *dto.AuditLogResponse {
	if auditLog == nil {
		return nil
	}

	response := &dto.AuditLogResponse{
		ID:        auditLog.ID,
		UserID:    auditLog.UserID,
		Action:    auditLog.Action,
		Metadata:  auditLog.Metadata,
		CreatedAt: auditLog.CreatedAt,
	}

	if auditLog.User != nil {
		response.UserName = auditLog.User.FullName
	}

	return response
}

// AuditLogsToResponses converts a slice of AuditLog entities to DTOs
func AuditLogsToResponses(auditLogs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(auditLogs))
	for i, auditLog := range auditLogs {
		resp := AuditLogToResponse(&auditLog)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
