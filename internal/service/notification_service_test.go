package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"clinic-management-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureEmailSender struct {
	mu       sync.Mutex
	err      error
	to       string
	subjects []string
	bodies   []string
}

func (s *captureEmailSender) Send(ctx context.Context, to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.to = to
	s.subjects = append(s.subjects, subject)
	s.bodies = append(s.bodies, body)
	return s.err
}

type captureSMSSender struct {
	mu     sync.Mutex
	err    error
	to     string
	bodies []string
}

func (s *captureSMSSender) SendSMS(ctx context.Context, to, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.to = to
	s.bodies = append(s.bodies, body)
	return s.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func notificationFixture(t *testing.T) (*entity.Appointment, *fakeClock) {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Almaty")
	require.NoError(t, err)

	clock := &fakeClock{now: time.Date(2026, 9, 7, 8, 0, 0, 0, loc), loc: loc}
	appointment := &entity.Appointment{
		ID:          uuid.New(),
		ScheduledAt: time.Date(2026, 9, 8, 5, 0, 0, 0, time.UTC),
		RoomNumber:  "305",
		Patient: entity.PatientProfile{
			PhoneNumber: "+77010000000",
			User:        entity.User{FullName: "Aida Nurlanova", Email: "aida@example.com"},
		},
		Doctor: entity.DoctorProfile{
			Specialty: "Cardiology",
			User:      entity.User{FullName: "Marat Bekov"},
		},
	}
	return appointment, clock
}

func TestBookingConfirmedSendsLocalTime(t *testing.T) {
	appointment, clock := notificationFixture(t)
	email := &captureEmailSender{}
	sms := &captureSMSSender{}
	svc := NewNotificationService(quietLogger(), clock, email, sms)

	svc.BookingConfirmed(appointment)
	svc.Wait()

	require.Len(t, email.bodies, 1)
	assert.Equal(t, "aida@example.com", email.to)
	// 05:00 UTC renders as 10:00 clinic time
	assert.Contains(t, email.bodies[0], "10:00")
	assert.Contains(t, email.bodies[0], "Marat Bekov")
	assert.Contains(t, email.bodies[0], "room 305")
	assert.Empty(t, sms.bodies)
}

func TestReceptionSummarySendsEmailAndSMS(t *testing.T) {
	appointment, clock := notificationFixture(t)
	email := &captureEmailSender{}
	sms := &captureSMSSender{}
	svc := NewNotificationService(quietLogger(), clock, email, sms)

	record := &entity.MedicalRecord{Diagnosis: "ARVI", Recommendations: "Rest and fluids"}
	svc.ReceptionSummary(appointment, record)
	svc.Wait()

	require.Len(t, email.bodies, 1)
	assert.Contains(t, email.bodies[0], "ARVI")
	assert.Contains(t, email.bodies[0], "Rest and fluids")

	require.Len(t, sms.bodies, 1)
	assert.Equal(t, "+77010000000", sms.to)
	assert.Contains(t, sms.bodies[0], "ARVI")
}

func TestReceptionSummarySkipsSMSWithoutPhone(t *testing.T) {
	appointment, clock := notificationFixture(t)
	appointment.Patient.PhoneNumber = ""
	email := &captureEmailSender{}
	sms := &captureSMSSender{}
	svc := NewNotificationService(quietLogger(), clock, email, sms)

	svc.ReceptionSummary(appointment, &entity.MedicalRecord{Diagnosis: "ARVI"})
	svc.Wait()

	assert.Len(t, email.bodies, 1)
	assert.Empty(t, sms.bodies)
}

func TestDeliveryFailureIsSwallowed(t *testing.T) {
	appointment, clock := notificationFixture(t)
	email := &captureEmailSender{err: errors.New("smtp unavailable")}
	sms := &captureSMSSender{err: errors.New("gateway down")}
	svc := NewNotificationService(quietLogger(), clock, email, sms)

	// Must not panic or surface the error to the caller.
	svc.BookingConfirmed(appointment)
	svc.ReceptionSummary(appointment, &entity.MedicalRecord{Diagnosis: "ARVI"})
	svc.Wait()

	assert.Len(t, email.bodies, 2)
}
