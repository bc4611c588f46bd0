package repository

import (
	"errors"
	"time"

	"clinic-management-backend/internal/domain/entity"
	domainRepo "clinic-management-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient.User").Preload("MedicalRecord").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Preload("Doctor.User").Where("patient_id = ?", patientID)
	query = applyAppointmentFilter(query, filter)
	err := query.Order("scheduled_at DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Preload("Patient.User").Where("doctor_id = ?", doctorID)
	query = applyAppointmentFilter(query, filter)
	err := query.Order("scheduled_at ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func applyAppointmentFilter(query *gorm.DB, filter *entity.AppointmentFilter) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.StartAt != "" {
		query = query.Where("scheduled_at >= ?", filter.StartAt)
	}
	if filter.EndAt != "" {
		query = query.Where("scheduled_at <= ?", filter.EndAt)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	return query
}

func (r *appointmentRepository) ExistsScheduledForDoctorAt(db *gorm.DB, doctorID uuid.UUID, at time.Time) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND scheduled_at = ? AND status = ?", doctorID, at, entity.AppointmentStatusScheduled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) ExistsScheduledForPatientAt(db *gorm.DB, patientID uuid.UUID, at time.Time) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("patient_id = ? AND scheduled_at = ? AND status = ?", patientID, at, entity.AppointmentStatusScheduled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) FindScheduledByDoctorBetween(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ? AND status = ? AND scheduled_at >= ? AND scheduled_at < ?",
		doctorID, entity.AppointmentStatusScheduled, from, to).
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// MarkCompleted flips scheduled -> completed ONLY while the appointment is
// still scheduled. Rows affected 0 means the guard failed (already terminal).
func (r *appointmentRepository) MarkCompleted(db *gorm.DB, id uuid.UUID, diagnosis string) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.AppointmentStatusScheduled).
		Updates(map[string]interface{}{
			"status":    entity.AppointmentStatusCompleted,
			"diagnosis": diagnosis,
		})
	return result.RowsAffected, result.Error
}

// CancelScheduled atomically cancels an appointment ONLY if it's still
// scheduled (prevents double-cancel and revert-from-terminal races).
func (r *appointmentRepository) CancelScheduled(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.AppointmentStatusScheduled).
		Update("status", entity.AppointmentStatusCancelled)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) DeleteScheduled(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND status = ?", id, entity.AppointmentStatusScheduled).
		Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CancelMissedByDoctor(db *gorm.DB, doctorID uuid.UUID, before time.Time) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND status = ? AND scheduled_at < ?", doctorID, entity.AppointmentStatusScheduled, before).
		Update("status", entity.AppointmentStatusCancelled)
	return result.RowsAffected, result.Error
}
