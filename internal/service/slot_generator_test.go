package service

import (
	"testing"
	"time"

	"clinic-management-backend/config"
	"clinic-management-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
	loc *time.Location
}

func (c *fakeClock) Now() time.Time           { return c.now.In(c.loc) }
func (c *fakeClock) Location() *time.Location { return c.loc }

func clinicDefaults() config.ClinicConfig {
	return config.ClinicConfig{
		Opening:     "09:00",
		Closing:     "18:00",
		LunchStart:  "13:00",
		LunchEnd:    "14:00",
		SlotMinutes: 30,
	}
}

func newTestGenerator(t *testing.T, now time.Time) (*SlotGenerator, *fakeClock) {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Almaty")
	require.NoError(t, err)
	clock := &fakeClock{now: now, loc: loc}
	return NewSlotGenerator(clinicDefaults(), clock), clock
}

func defaultHours(t *testing.T, g *SlotGenerator) WorkingHours {
	t.Helper()
	hours, err := g.HoursForDoctor(&entity.DoctorProfile{})
	require.NoError(t, err)
	return hours
}

func TestGenerateSlotsWeekday(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Almaty")
	// Monday before the clinic opens
	g, _ := newTestGenerator(t, time.Date(2026, 9, 7, 8, 0, 0, 0, loc))
	hours := defaultHours(t, g)

	// Tuesday
	slots := g.GenerateSlots(hours, time.Date(2026, 9, 8, 0, 0, 0, 0, loc), false)

	assert.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0].Format("15:04"))
	assert.Equal(t, "17:30", slots[len(slots)-1].Format("15:04"))

	for _, slot := range slots {
		hm := slot.Format("15:04")
		assert.NotEqual(t, "13:00", hm)
		assert.NotEqual(t, "13:30", hm)
	}
}

func TestGenerateSlotsWeekendEmpty(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Almaty")
	g, _ := newTestGenerator(t, time.Date(2026, 9, 7, 8, 0, 0, 0, loc))
	hours := defaultHours(t, g)

	saturday := time.Date(2026, 9, 12, 0, 0, 0, 0, loc)
	sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, loc)

	assert.Empty(t, g.GenerateSlots(hours, saturday, false))
	assert.Empty(t, g.GenerateSlots(hours, sunday, false))
}

func TestGenerateSlotsExcludePast(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Almaty")
	// Tuesday 12:15 local
	g, _ := newTestGenerator(t, time.Date(2026, 9, 8, 12, 15, 0, 0, loc))
	hours := defaultHours(t, g)

	slots := g.GenerateSlots(hours, time.Date(2026, 9, 8, 0, 0, 0, 0, loc), true)

	// 12:00 survives (it ends 12:30, after now), 12:30 survives, then the
	// afternoon block 14:00..17:30.
	require.NotEmpty(t, slots)
	assert.Equal(t, "12:00", slots[0].Format("15:04"))
	assert.Len(t, slots, 10)
}

func TestHoursForDoctorFallsBackToDefaults(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Almaty")
	g, _ := newTestGenerator(t, time.Date(2026, 9, 7, 8, 0, 0, 0, loc))

	hours, err := g.HoursForDoctor(&entity.DoctorProfile{})
	require.NoError(t, err)
	assert.Equal(t, 9*60, hours.Open)
	assert.Equal(t, 18*60, hours.Close)
	assert.Equal(t, 13*60, hours.LunchStart)
	assert.Equal(t, 14*60, hours.LunchEnd)
	assert.Equal(t, 30, hours.SlotMinutes)

	custom, err := g.HoursForDoctor(&entity.DoctorProfile{WorkStart: "10:00", WorkEnd: "16:00"})
	require.NoError(t, err)
	assert.Equal(t, 10*60, custom.Open)
	assert.Equal(t, 16*60, custom.Close)
}

func TestHoursForDoctorRejectsGarbage(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Almaty")
	g, _ := newTestGenerator(t, time.Date(2026, 9, 7, 8, 0, 0, 0, loc))

	_, err := g.HoursForDoctor(&entity.DoctorProfile{WorkStart: "nine"})
	assert.ErrorIs(t, err, ErrInvalidWorkingHours)
}

func TestValidateSlot(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Almaty")
	// Monday 2026-09-07 08:00 local
	g, _ := newTestGenerator(t, time.Date(2026, 9, 7, 8, 0, 0, 0, loc))
	hours := defaultHours(t, g)

	tests := []struct {
		name string
		at   time.Time
		want error
	}{
		{"valid morning slot", time.Date(2026, 9, 8, 10, 0, 0, 0, loc), nil},
		{"valid last slot", time.Date(2026, 9, 8, 17, 30, 0, 0, loc), nil},
		{"in the past", time.Date(2026, 9, 4, 10, 0, 0, 0, loc), ErrSlotInPast},
		{"saturday", time.Date(2026, 9, 12, 10, 0, 0, 0, loc), ErrSlotOnWeekend},
		{"off the grid", time.Date(2026, 9, 8, 10, 15, 0, 0, loc), ErrSlotNotOnBoundary},
		{"sub-minute precision", time.Date(2026, 9, 8, 10, 0, 30, 0, loc), ErrSlotNotOnBoundary},
		{"before opening", time.Date(2026, 9, 8, 8, 30, 0, 0, loc), ErrSlotOutsideWorkingHours},
		{"at closing", time.Date(2026, 9, 8, 18, 0, 0, 0, loc), ErrSlotOutsideWorkingHours},
		{"during lunch", time.Date(2026, 9, 8, 13, 30, 0, 0, loc), ErrSlotDuringLunch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.ValidateSlot(hours, tt.at)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

// A doctor whose day starts off the half-hour mark gets a grid anchored at
// the opening time, and every advertised slot must be bookable.
func TestValidateSlotAcceptsOffsetGrid(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Almaty")
	g, _ := newTestGenerator(t, time.Date(2026, 9, 7, 8, 0, 0, 0, loc))

	hours, err := g.HoursForDoctor(&entity.DoctorProfile{WorkStart: "09:15", WorkEnd: "17:45"})
	require.NoError(t, err)

	slots := g.GenerateSlots(hours, time.Date(2026, 9, 8, 0, 0, 0, 0, loc), false)
	require.NotEmpty(t, slots)
	assert.Equal(t, "09:15", slots[0].Format("15:04"))

	for _, slot := range slots {
		assert.NoError(t, g.ValidateSlot(hours, slot), "slot %s", slot.Format("15:04"))
	}

	// The half-hour mark is off this doctor's grid.
	err = g.ValidateSlot(hours, time.Date(2026, 9, 8, 9, 30, 0, 0, loc))
	assert.ErrorIs(t, err, ErrSlotNotOnBoundary)
}

func TestValidateSlotAcceptsUTCInput(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Almaty")
	g, _ := newTestGenerator(t, time.Date(2026, 9, 7, 8, 0, 0, 0, loc))
	hours := defaultHours(t, g)

	// 05:00 UTC on Tuesday is 10:00 in Almaty (UTC+5)
	at := time.Date(2026, 9, 8, 5, 0, 0, 0, time.UTC)
	assert.NoError(t, g.ValidateSlot(hours, at))
}

func TestValidateWorkingHours(t *testing.T) {
	assert.NoError(t, ValidateWorkingHours("09:00", "18:00", "13:00", "14:00"))
	assert.ErrorIs(t, ValidateWorkingHours("18:00", "09:00", "13:00", "14:00"), ErrInvalidWorkingHours)
	assert.ErrorIs(t, ValidateWorkingHours("09:00", "18:00", "14:00", "13:00"), ErrInvalidWorkingHours)
	assert.ErrorIs(t, ValidateWorkingHours("09:00", "18:00", "08:00", "08:30"), ErrInvalidWorkingHours)
	assert.ErrorIs(t, ValidateWorkingHours("late", "18:00", "13:00", "14:00"), ErrInvalidWorkingHours)
}
