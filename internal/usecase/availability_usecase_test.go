package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-management-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailabilityFixture(t *testing.T, now time.Time) (AvailabilityUsecase, *appointmentRepoMock, uuid.UUID) {
	t.Helper()

	db, _ := newTestDB(t)
	log := testLogger()
	clock := almatyClock(t, now)

	doctorID := uuid.New()
	appointments := &appointmentRepoMock{}
	doctors := &doctorProfileRepoMock{
		findByUserIDFn: func(userID uuid.UUID) (*entity.DoctorProfile, error) {
			if userID == doctorID {
				return &entity.DoctorProfile{UserID: doctorID, Specialty: "Cardiology"}, nil
			}
			return nil, nil
		},
	}

	uc := NewAvailabilityUsecase(db, log, appointments, doctors, testSlotGenerator(clock), clock)
	return uc, appointments, doctorID
}

func TestListAvailableSlotsMarksBooked(t *testing.T) {
	// Monday 08:00 clinic time
	uc, appointments, doctorID := newAvailabilityFixture(t, time.Date(2026, 9, 7, 3, 0, 0, 0, time.UTC))

	// 10:00 clinic time on the requested Tuesday
	bookedAt := time.Date(2026, 9, 8, 5, 0, 0, 0, time.UTC)
	appointments.findScheduledFn = func(id uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
		return []entity.Appointment{{DoctorID: id, ScheduledAt: bookedAt, Status: entity.AppointmentStatusScheduled}}, nil
	}

	resp, err := uc.ListAvailableSlots(context.Background(), doctorID, "2026-09-08")

	require.NoError(t, err)
	require.Len(t, resp.Slots, 16)
	assert.Equal(t, "2026-09-08", resp.Date)

	available := 0
	for _, slot := range resp.Slots {
		if slot.Available {
			available++
			continue
		}
		assert.Equal(t, "10:00", slot.Time)
	}
	assert.Equal(t, 15, available)
}

func TestListAvailableSlotsWeekend(t *testing.T) {
	uc, _, doctorID := newAvailabilityFixture(t, time.Date(2026, 9, 7, 3, 0, 0, 0, time.UTC))

	resp, err := uc.ListAvailableSlots(context.Background(), doctorID, "2026-09-12")

	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestListAvailableSlotsTodayHidesPast(t *testing.T) {
	// Tuesday 12:15 clinic time
	uc, appointments, doctorID := newAvailabilityFixture(t, time.Date(2026, 9, 8, 7, 15, 0, 0, time.UTC))
	appointments.findScheduledFn = func(id uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
		return nil, nil
	}

	resp, err := uc.ListAvailableSlots(context.Background(), doctorID, "2026-09-08")

	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "12:00", resp.Slots[0].Time)
	assert.Len(t, resp.Slots, 10)
}

func TestListAvailableSlotsPastDateEmpty(t *testing.T) {
	uc, _, doctorID := newAvailabilityFixture(t, time.Date(2026, 9, 7, 3, 0, 0, 0, time.UTC))

	resp, err := uc.ListAvailableSlots(context.Background(), doctorID, "2026-09-01")

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestListAvailableSlotsInvalidDate(t *testing.T) {
	uc, _, doctorID := newAvailabilityFixture(t, time.Date(2026, 9, 7, 3, 0, 0, 0, time.UTC))

	_, err := uc.ListAvailableSlots(context.Background(), doctorID, "08-09-2026")

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestListAvailableSlotsUnknownDoctor(t *testing.T) {
	uc, _, _ := newAvailabilityFixture(t, time.Date(2026, 9, 7, 3, 0, 0, 0, time.UTC))

	_, err := uc.ListAvailableSlots(context.Background(), uuid.New(), "2026-09-08")

	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
