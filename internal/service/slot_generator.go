package service

import (
	"errors"
	"time"

	"clinic-management-backend/config"
	"clinic-management-backend/internal/domain/entity"
)

// Slot policy violations
var (
	ErrSlotInPast              = errors.New("slot is in the past")
	ErrSlotOnWeekend           = errors.New("clinic is closed on weekends")
	ErrSlotOutsideWorkingHours = errors.New("slot is outside working hours")
	ErrSlotDuringLunch         = errors.New("slot falls within the lunch break")
	ErrSlotNotOnBoundary       = errors.New("slot must start on a 30-minute boundary")
	ErrInvalidWorkingHours     = errors.New("invalid working hours format, use HH:MM")
)

// WorkingHours is the per-doctor policy in minutes since midnight.
type WorkingHours struct {
	Open        int
	Close       int
	LunchStart  int
	LunchEnd    int
	SlotMinutes int
}

// SlotGenerator produces the canonical half-hour grid for a doctor and date.
// Pure function of (doctor config, date, current time); no side effects.
type SlotGenerator struct {
	defaults config.ClinicConfig
	clock    Clock
}

func NewSlotGenerator(defaults config.ClinicConfig, clock Clock) *SlotGenerator {
	return &SlotGenerator{
		defaults: defaults,
		clock:    clock,
	}
}

// HoursForDoctor resolves a doctor's working-hours descriptor, falling back
// to the clinic defaults for any field the profile leaves empty.
func (g *SlotGenerator) HoursForDoctor(doctor *entity.DoctorProfile) (WorkingHours, error) {
	open, err := minutesOfDay(firstNonEmpty(doctor.WorkStart, g.defaults.Opening))
	if err != nil {
		return WorkingHours{}, err
	}
	closing, err := minutesOfDay(firstNonEmpty(doctor.WorkEnd, g.defaults.Closing))
	if err != nil {
		return WorkingHours{}, err
	}
	lunchStart, err := minutesOfDay(firstNonEmpty(doctor.LunchStart, g.defaults.LunchStart))
	if err != nil {
		return WorkingHours{}, err
	}
	lunchEnd, err := minutesOfDay(firstNonEmpty(doctor.LunchEnd, g.defaults.LunchEnd))
	if err != nil {
		return WorkingHours{}, err
	}

	return WorkingHours{
		Open:        open,
		Close:       closing,
		LunchStart:  lunchStart,
		LunchEnd:    lunchEnd,
		SlotMinutes: g.defaults.SlotMinutes,
	}, nil
}

// GenerateSlots walks from opening to closing time in fixed steps, excluding
// lunch. Weekends yield an empty sequence, not an error. When excludePast is
// set (today's availability), only slots whose end is strictly after the
// current local time survive.
func (g *SlotGenerator) GenerateSlots(hours WorkingHours, date time.Time, excludePast bool) []time.Time {
	loc := g.clock.Location()
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	if isWeekend(day.Weekday()) {
		return nil
	}

	now := g.clock.Now()
	step := time.Duration(hours.SlotMinutes) * time.Minute

	var slots []time.Time
	for m := hours.Open; m+hours.SlotMinutes <= hours.Close; m += hours.SlotMinutes {
		if m >= hours.LunchStart && m < hours.LunchEnd {
			continue
		}
		slot := day.Add(time.Duration(m) * time.Minute)
		if excludePast && !slot.Add(step).After(now) {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

// ValidateSlot enforces the booking policy for a single candidate timestamp:
// future, weekday, on-boundary, inside working hours, outside lunch.
func (g *SlotGenerator) ValidateSlot(hours WorkingHours, at time.Time) error {
	local := at.In(g.clock.Location())

	if !local.After(g.clock.Now()) {
		return ErrSlotInPast
	}
	if isWeekend(local.Weekday()) {
		return ErrSlotOnWeekend
	}

	// The grid is anchored at opening time, so boundary alignment is
	// relative to it. A 09:15 opening yields bookable 09:15/09:45/... slots.
	m := local.Hour()*60 + local.Minute()
	if local.Second() != 0 || local.Nanosecond() != 0 || (m-hours.Open)%hours.SlotMinutes != 0 {
		return ErrSlotNotOnBoundary
	}
	if m < hours.Open || m+hours.SlotMinutes > hours.Close {
		return ErrSlotOutsideWorkingHours
	}
	if m >= hours.LunchStart && m < hours.LunchEnd {
		return ErrSlotDuringLunch
	}
	return nil
}

// ValidateWorkingHours rejects malformed or inverted HH:MM descriptors
// before they reach a doctor profile.
func ValidateWorkingHours(workStart, workEnd, lunchStart, lunchEnd string) error {
	open, err := minutesOfDay(workStart)
	if err != nil {
		return err
	}
	closing, err := minutesOfDay(workEnd)
	if err != nil {
		return err
	}
	ls, err := minutesOfDay(lunchStart)
	if err != nil {
		return err
	}
	le, err := minutesOfDay(lunchEnd)
	if err != nil {
		return err
	}

	if open >= closing || ls > le || ls < open || le > closing {
		return ErrInvalidWorkingHours
	}
	return nil
}

func isWeekend(day time.Weekday) bool {
	return day == time.Saturday || day == time.Sunday
}

// minutesOfDay parses "HH:MM" into minutes since midnight.
func minutesOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidWorkingHours
	}
	return t.Hour()*60 + t.Minute(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
