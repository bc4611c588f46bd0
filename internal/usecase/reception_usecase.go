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
	ErrDiagnosisRequired  = errors.New("diagnosis is required to complete an appointment")
	ErrTemplateNotFound   = errors.New("diagnosis template not found")
	ErrRecordNotFound     = errors.New("medical record not found")
	ErrRecordAccessDenied = errors.New("medical record belongs to another patient")
)

// ReceptionUsecase closes appointments: the completed-status transition, the
// medical record, and its prescriptions commit atomically.
type ReceptionUsecase interface {
	Complete(ctx context.Context, doctorID uuid.UUID, appointmentID uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.CompleteAppointmentResponse, error)
	GetRecordByAppointment(ctx context.Context, actorID uuid.UUID, roleID int, appointmentID uuid.UUID) (*dto.MedicalRecordResponse, error)
	ListPatientRecords(ctx context.Context, patientID uuid.UUID) (*dto.MedicalRecordListResponse, error)
}

type receptionUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	appointmentRepo     repository.AppointmentRepository
	medicalRecordRepo   repository.MedicalRecordRepository
	prescriptionRepo    repository.PrescriptionRepository
	medicineRepo        repository.MedicineRepository
	templateRepo        repository.DiagnosisTemplateRepository
	notificationService *service.NotificationService
	auditService        service.AuditService
}

func NewReceptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	medicalRecordRepo repository.MedicalRecordRepository,
	prescriptionRepo repository.PrescriptionRepository,
	medicineRepo repository.MedicineRepository,
	templateRepo repository.DiagnosisTemplateRepository,
	notificationService *service.NotificationService,
	auditService service.AuditService,
) ReceptionUsecase {
	return &receptionUsecase{
		db:                  db,
		log:                 log,
		appointmentRepo:     appointmentRepo,
		medicalRecordRepo:   medicalRecordRepo,
		prescriptionRepo:    prescriptionRepo,
		medicineRepo:        medicineRepo,
		templateRepo:        templateRepo,
		notificationService: notificationService,
		auditService:        auditService,
	}
}

func (u *receptionUsecase) Complete(ctx context.Context, doctorID uuid.UUID, appointmentID uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.CompleteAppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	// Only the assigned doctor closes a visit.
	if appointment.DoctorID != doctorID {
		return nil, ErrAppointmentNotOwned
	}

	diagnosis := req.Diagnosis
	recommendations := req.Recommendations

	var template *entity.DiagnosisTemplate
	if req.TemplateID != nil {
		template, err = u.templateRepo.FindByID(tx, *req.TemplateID)
		if err != nil {
			u.log.Warnf("Failed to find diagnosis template: %+v", err)
			return nil, err
		}
		if template == nil || template.DoctorID != doctorID {
			return nil, ErrTemplateNotFound
		}
		if diagnosis == "" {
			diagnosis = template.Diagnosis
		}
		if recommendations == "" {
			recommendations = template.Recommendations
		}
	}

	if diagnosis == "" {
		return nil, ErrDiagnosisRequired
	}

	rows, err := u.appointmentRepo.MarkCompleted(tx, appointmentID, diagnosis)
	if err != nil {
		u.log.Warnf("Failed to complete appointment: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentNotScheduled
	}

	record := &entity.MedicalRecord{
		AppointmentID:   appointmentID,
		Complaints:      req.Complaints,
		Anamnesis:       req.Anamnesis,
		ObjectiveData:   req.ObjectiveData,
		Diagnosis:       diagnosis,
		Recommendations: recommendations,
		DoctorNotes:     req.DoctorNotes,
	}

	if err := u.medicalRecordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	// Prescription lines referencing unknown medicines are dropped, not
	// fatal; the caller learns how many via the response.
	dropped := 0
	for _, line := range req.Prescriptions {
		known, err := u.medicineRepo.Exists(tx, line.MedicineID)
		if err != nil {
			u.log.Warnf("Failed to check medicine %s: %+v", line.MedicineID, err)
			return nil, err
		}
		if !known {
			dropped++
			u.log.Warnf("Dropping prescription line with unknown medicine %s for appointment %s", line.MedicineID, appointmentID)
			continue
		}

		prescription := &entity.Prescription{
			MedicalRecordID: record.ID,
			MedicineID:      line.MedicineID,
			Dosage:          line.Dosage,
			Frequency:       line.Frequency,
			Duration:        line.Duration,
			Instructions:    line.Instructions,
		}
		if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
			u.log.Warnf("Failed to create prescription: %+v", err)
			return nil, err
		}
	}

	if template != nil {
		if err := u.templateRepo.IncrementUsage(tx, template.ID); err != nil {
			u.log.Warnf("Failed to increment template usage: %+v", err)
			return nil, err
		}
	}

	u.auditService.LogUpdate(ctx, tx, &doctorID, entity.AuditActionAppointmentComplete, "appointment", appointmentID.String(),
		map[string]interface{}{"status": string(entity.AppointmentStatusScheduled)},
		map[string]interface{}{
			"status":    string(entity.AppointmentStatusCompleted),
			"record_id": record.ID.String(),
		},
	)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	db := u.db.WithContext(ctx)

	completed, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil || completed == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointmentID, err)
		completed = appointment
	}

	saved, err := u.medicalRecordRepo.FindByAppointmentID(db, appointmentID)
	if err != nil || saved == nil {
		u.log.Warnf("Failed to reload medical record for appointment %s: %+v", appointmentID, err)
		saved = record
	}

	u.notificationService.ReceptionSummary(completed, saved)

	return &dto.CompleteAppointmentResponse{
		Appointment:          converter.AppointmentToResponse(completed),
		MedicalRecord:        converter.MedicalRecordToResponse(saved),
		DroppedPrescriptions: dropped,
	}, nil
}

func (u *receptionUsecase) GetRecordByAppointment(ctx context.Context, actorID uuid.UUID, roleID int, appointmentID uuid.UUID) (*dto.MedicalRecordResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if err := authorizeAppointmentAccess(appointment, actorID, roleID); err != nil {
		return nil, ErrRecordAccessDenied
	}

	record, err := u.medicalRecordRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *receptionUsecase) ListPatientRecords(ctx context.Context, patientID uuid.UUID) (*dto.MedicalRecordListResponse, error) {
	records, err := u.medicalRecordRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}
