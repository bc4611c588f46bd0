package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinic-management-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// EmailSender delivers a single email message
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMSSender delivers a single SMS message
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

const notifyTimeout = 10 * time.Second

// NotificationService dispatches lifecycle notifications to patients.
// Dispatch is fire-and-forget: it runs on its own goroutine with its own
// timeout context, and delivery failures are logged, never surfaced to the
// transition that triggered them.
type NotificationService struct {
	log   *logrus.Logger
	clock Clock
	email EmailSender
	sms   SMSSender

	wg sync.WaitGroup
}

func NewNotificationService(log *logrus.Logger, clock Clock, email EmailSender, sms SMSSender) *NotificationService {
	return &NotificationService{
		log:   log,
		clock: clock,
		email: email,
		sms:   sms,
	}
}

// Wait blocks until all in-flight dispatches finish. Used on shutdown and in
// tests; callers on the request path never wait.
func (s *NotificationService) Wait() {
	s.wg.Wait()
}

// BookingConfirmed notifies the patient that an appointment was created.
func (s *NotificationService) BookingConfirmed(appointment *entity.Appointment) {
	s.dispatch(func(ctx context.Context) {
		s.sendBookingConfirmed(ctx, appointment)
	})
}

// ReceptionSummary sends the visit report (email + SMS) after completion.
func (s *NotificationService) ReceptionSummary(appointment *entity.Appointment, record *entity.MedicalRecord) {
	s.dispatch(func(ctx context.Context) {
		s.sendReceptionSummary(ctx, appointment, record)
	})
}

func (s *NotificationService) dispatch(fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		fn(ctx)
	}()
}

func (s *NotificationService) sendBookingConfirmed(ctx context.Context, appointment *entity.Appointment) {
	local := appointment.ScheduledAt.In(s.clock.Location())
	subject := fmt.Sprintf("Appointment confirmation for %s", local.Format("02.01.2006"))
	body := fmt.Sprintf(
		"Hello, %s! You are booked with Dr. %s (%s) on %s at %s, room %s.",
		appointment.Patient.User.FullName,
		appointment.Doctor.User.FullName,
		appointment.Doctor.Specialty,
		local.Format("02 January 2006"),
		local.Format("15:04"),
		appointment.RoomNumber,
	)

	if err := s.email.Send(ctx, appointment.Patient.User.Email, subject, body); err != nil {
		s.log.Warnf("Failed to send booking confirmation email for appointment %s: %+v", appointment.ID, err)
	}
}

func (s *NotificationService) sendReceptionSummary(ctx context.Context, appointment *entity.Appointment, record *entity.MedicalRecord) {
	local := appointment.ScheduledAt.In(s.clock.Location())
	subject := fmt.Sprintf("Visit report from %s", local.Format("02.01.2006"))
	body := fmt.Sprintf(
		"Hello, %s! Your visit with Dr. %s is complete. Diagnosis: %s. Recommendations: %s",
		appointment.Patient.User.FullName,
		appointment.Doctor.User.FullName,
		record.Diagnosis,
		record.Recommendations,
	)

	if err := s.email.Send(ctx, appointment.Patient.User.Email, subject, body); err != nil {
		s.log.Warnf("Failed to send reception summary email for appointment %s: %+v", appointment.ID, err)
	}

	if appointment.Patient.PhoneNumber == "" {
		return
	}
	sms := fmt.Sprintf("Your visit on %s is complete. Diagnosis: %s", local.Format("02.01.2006"), record.Diagnosis)
	if err := s.sms.SendSMS(ctx, appointment.Patient.PhoneNumber, sms); err != nil {
		s.log.Warnf("Failed to send reception summary SMS for appointment %s: %+v", appointment.ID, err)
	}
}

// LogEmailSender is the default sender used outside production deployments.
// It mimics a provider call by logging the message.
type LogEmailSender struct {
	Log *logrus.Logger
}

func (s *LogEmailSender) Send(ctx context.Context, to, subject, body string) error {
	s.Log.Infof("Email to %s: subject=%q body=%q", to, subject, body)
	return nil
}

// LogSMSSender is the default SMS stub, same idea as LogEmailSender.
type LogSMSSender struct {
	Log *logrus.Logger
}

func (s *LogSMSSender) SendSMS(ctx context.Context, to, body string) error {
	s.Log.Infof("SMS to %s: %q", to, body)
	return nil
}
