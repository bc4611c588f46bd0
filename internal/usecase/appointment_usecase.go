package usecase

import (
	"context"
	"database/sql"
	"errors"
	"time"

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
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrAppointmentNotOwned     = errors.New("appointment belongs to another user")
	ErrAppointmentNotScheduled = errors.New("appointment is no longer scheduled")
	ErrDoctorNotFound          = errors.New("doctor not found")
	ErrPatientNotFound         = errors.New("patient not found")
	ErrDoctorSlotTaken         = errors.New("doctor already has an appointment at this time")
	ErrPatientSlotTaken        = errors.New("patient already has an appointment at this time")
	ErrInvalidTimestamp        = errors.New("invalid timestamp format, use RFC3339")
)

type AppointmentUsecase interface {
	CreateByPatient(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	CreateByDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.CreateAppointmentByDoctorRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, actorID uuid.UUID, roleID int, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error)
	Cancel(ctx context.Context, actorID uuid.UUID, roleID int, id uuid.UUID) error
	Delete(ctx context.Context, actorID uuid.UUID, roleID int, id uuid.UUID) error
	ReapMissed(ctx context.Context, doctorID uuid.UUID) (int64, error)
}

type appointmentUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	appointmentRepo     repository.AppointmentRepository
	doctorProfileRepo   repository.DoctorProfileRepository
	patientProfileRepo  repository.PatientProfileRepository
	slotGenerator       *service.SlotGenerator
	roomAssigner        service.RoomAssigner
	notificationService *service.NotificationService
	auditService        service.AuditService
	clock               service.Clock
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	slotGenerator *service.SlotGenerator,
	roomAssigner service.RoomAssigner,
	notificationService *service.NotificationService,
	auditService service.AuditService,
	clock service.Clock,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                  db,
		log:                 log,
		appointmentRepo:     appointmentRepo,
		doctorProfileRepo:   doctorProfileRepo,
		patientProfileRepo:  patientProfileRepo,
		slotGenerator:       slotGenerator,
		roomAssigner:        roomAssigner,
		notificationService: notificationService,
		auditService:        auditService,
		clock:               clock,
	}
}

func (u *appointmentUsecase) CreateByPatient(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return u.create(ctx, patientID, patientID, req.DoctorID, req.ScheduledAt, req.Notes)
}

func (u *appointmentUsecase) CreateByDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.CreateAppointmentByDoctorRequest) (*dto.AppointmentResponse, error) {
	return u.create(ctx, doctorID, req.PatientID, doctorID, req.ScheduledAt, req.Notes)
}

// create books a slot for (patient, doctor). Policy checks run outside the
// transaction; the conflict check and insert run inside a serializable
// transaction, with partial unique indexes as the storage-level backstop.
func (u *appointmentUsecase) create(ctx context.Context, actorID, patientID, doctorID uuid.UUID, scheduledAt, notes string) (*dto.AppointmentResponse, error) {
	at, err := time.Parse(time.RFC3339, scheduledAt)
	if err != nil {
		return nil, ErrInvalidTimestamp
	}
	at = at.UTC()

	db := u.db.WithContext(ctx)

	doctor, err := u.doctorProfileRepo.FindByUserID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	patient, err := u.patientProfileRepo.FindByUserID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	hours, err := u.slotGenerator.HoursForDoctor(doctor)
	if err != nil {
		return nil, err
	}
	if err := u.slotGenerator.ValidateSlot(hours, at); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID:   patientID,
		DoctorID:    doctorID,
		ScheduledAt: at,
		Status:      entity.AppointmentStatusScheduled,
		Notes:       notes,
		RoomNumber:  u.roomAssigner.Assign(doctor),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		taken, err := u.appointmentRepo.ExistsScheduledForDoctorAt(tx, doctorID, at)
		if err != nil {
			return err
		}
		if taken {
			return ErrDoctorSlotTaken
		}

		busy, err := u.appointmentRepo.ExistsScheduledForPatientAt(tx, patientID, at)
		if err != nil {
			return err
		}
		if busy {
			return ErrPatientSlotTaken
		}

		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			return err
		}

		u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), map[string]interface{}{
			"patient_id":   patientID.String(),
			"doctor_id":    doctorID.String(),
			"scheduled_at": at.Format(time.RFC3339),
		})

		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if err != nil {
		// The unique indexes fire when two transactions race past the
		// existence checks.
		if isDuplicateKeyError(err, "doctor") {
			return nil, ErrDoctorSlotTaken
		}
		if isDuplicateKeyError(err, "patient") {
			return nil, ErrPatientSlotTaken
		}
		if errors.Is(err, ErrDoctorSlotTaken) || errors.Is(err, ErrPatientSlotTaken) {
			return nil, err
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	created, err := u.appointmentRepo.FindByID(db, appointment.ID)
	if err != nil || created == nil {
		// Booking succeeded; fall back to the bare entity for the response.
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		created = appointment
	}
	u.notificationService.BookingConfirmed(created)

	return converter.AppointmentToResponse(created), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, actorID uuid.UUID, roleID int, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if err := authorizeAppointmentAccess(appointment, actorID, roleID); err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID, listFilter(req))
	if err != nil {
		u.log.Warnf("Failed to list patient appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListForDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID, listFilter(req))
	if err != nil {
		u.log.Warnf("Failed to list doctor appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, actorID uuid.UUID, roleID int, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if err := authorizeAppointmentChange(appointment, actorID, roleID); err != nil {
		return err
	}

	rows, err := u.appointmentRepo.CancelScheduled(tx, id)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotScheduled
	}

	u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAppointmentCancel, "appointment", id.String(),
		map[string]interface{}{"status": string(entity.AppointmentStatusScheduled)},
		map[string]interface{}{"status": string(entity.AppointmentStatusCancelled)},
	)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// Delete removes a scheduled appointment entirely. Completed and cancelled
// appointments are history and stay.
func (u *appointmentUsecase) Delete(ctx context.Context, actorID uuid.UUID, roleID int, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if err := authorizeAppointmentChange(appointment, actorID, roleID); err != nil {
		return err
	}

	rows, err := u.appointmentRepo.DeleteScheduled(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotScheduled
	}

	u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionAppointmentDelete, "appointment", id.String(), map[string]interface{}{
		"patient_id":   appointment.PatientID.String(),
		"doctor_id":    appointment.DoctorID.String(),
		"scheduled_at": appointment.ScheduledAt.Format(time.RFC3339),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// ReapMissed cancels every scheduled appointment of the doctor that ended on
// a previous local day. The cutoff is the start of the clinic-local today, so
// today's not-yet-held appointments survive. Idempotent; safe to run on every
// login.
func (u *appointmentUsecase) ReapMissed(ctx context.Context, doctorID uuid.UUID) (int64, error) {
	now := u.clock.Now()
	year, month, day := now.Date()
	cutoff := time.Date(year, month, day, 0, 0, 0, 0, u.clock.Location()).UTC()

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	reaped, err := u.appointmentRepo.CancelMissedByDoctor(tx, doctorID, cutoff)
	if err != nil {
		u.log.Warnf("Failed to reap missed appointments: %+v", err)
		return 0, err
	}

	if reaped > 0 {
		u.auditService.LogUpdate(ctx, tx, &doctorID, entity.AuditActionAppointmentReap, "appointment", doctorID.String(),
			nil,
			map[string]interface{}{
				"cancelled": reaped,
				"cutoff":    cutoff.Format(time.RFC3339),
			},
		)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return 0, err
	}

	return reaped, nil
}

// authorizeAppointmentAccess allows admins, the booked patient, and the
// assigned doctor. Read paths only.
func authorizeAppointmentAccess(appointment *entity.Appointment, actorID uuid.UUID, roleID int) error {
	switch roleID {
	case entity.RoleIDAdmin:
		return nil
	case entity.RoleIDDoctor:
		if appointment.DoctorID == actorID {
			return nil
		}
	case entity.RoleIDPatient:
		if appointment.PatientID == actorID {
			return nil
		}
	}
	return ErrAppointmentNotOwned
}

// authorizeAppointmentChange gates cancel and delete: admins and the booked
// patient only. The assigned doctor reads the appointment and completes it,
// but never cancels or removes the patient's booking.
func authorizeAppointmentChange(appointment *entity.Appointment, actorID uuid.UUID, roleID int) error {
	switch roleID {
	case entity.RoleIDAdmin:
		return nil
	case entity.RoleIDPatient:
		if appointment.PatientID == actorID {
			return nil
		}
	}
	return ErrAppointmentNotOwned
}

func listFilter(req *dto.ListAppointmentsRequest) *entity.AppointmentFilter {
	if req == nil {
		return nil
	}
	return &entity.AppointmentFilter{
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
		Status:  req.Status,
	}
}
