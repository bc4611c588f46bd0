package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management-backend/internal/delivery/dto"
	"clinic-management-backend/internal/domain/repository"
	"clinic-management-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

// AvailabilityUsecase answers "which slots can still be booked for this
// doctor on this date".
type AvailabilityUsecase interface {
	ListAvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.DaySlotsResponse, error)
}

type availabilityUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	doctorProfileRepo repository.DoctorProfileRepository
	slotGenerator     *service.SlotGenerator
	clock             service.Clock
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	slotGenerator *service.SlotGenerator,
	clock service.Clock,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:                db,
		log:               log,
		appointmentRepo:   appointmentRepo,
		doctorProfileRepo: doctorProfileRepo,
		slotGenerator:     slotGenerator,
		clock:             clock,
	}
}

func (u *availabilityUsecase) ListAvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.DaySlotsResponse, error) {
	loc := u.clock.Location()

	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	db := u.db.WithContext(ctx)

	doctor, err := u.doctorProfileRepo.FindByUserID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	hours, err := u.slotGenerator.HoursForDoctor(doctor)
	if err != nil {
		return nil, err
	}

	// Past slots only disappear for today's grid; past dates simply come
	// back with every slot filtered out.
	now := u.clock.Now()
	sameDay := day.Year() == now.Year() && day.YearDay() == now.YearDay()
	slots := u.slotGenerator.GenerateSlots(hours, day, sameDay || day.Before(now))

	response := &dto.DaySlotsResponse{
		DoctorID: doctorID,
		Date:     day.Format("2006-01-02"),
		Slots:    []dto.SlotResponse{},
	}
	if len(slots) == 0 {
		return response, nil
	}

	dayStart := day.UTC()
	dayEnd := day.Add(24 * time.Hour).UTC()

	booked, err := u.appointmentRepo.FindScheduledByDoctorBetween(db, doctorID, dayStart, dayEnd)
	if err != nil {
		u.log.Warnf("Failed to load booked slots: %+v", err)
		return nil, err
	}

	taken := make(map[int64]bool, len(booked))
	for _, appointment := range booked {
		taken[appointment.ScheduledAt.Unix()] = true
	}

	for _, slot := range slots {
		response.Slots = append(response.Slots, dto.SlotResponse{
			Time:      slot.Format("15:04"),
			Datetime:  slot.Format(time.RFC3339),
			Available: !taken[slot.Unix()],
		})
	}

	return response, nil
}
