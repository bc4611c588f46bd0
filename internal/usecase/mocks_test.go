package usecase

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"clinic-management-backend/config"
	"clinic-management-backend/internal/domain/entity"
	"clinic-management-backend/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns a gorm handle backed by sqlmock. The repositories in
// these tests are fakes that never touch the connection, so the mock only
// carries transaction begin/commit/rollback calls.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.MatchExpectationsInOrder(false)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock
}

func expectTransactions(mock sqlmock.Sqlmock, n int) {
	for i := 0; i < n; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
		mock.ExpectRollback()
	}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeClock struct {
	now time.Time
	loc *time.Location
}

func (c *fakeClock) Now() time.Time           { return c.now.In(c.loc) }
func (c *fakeClock) Location() *time.Location { return c.loc }

func almatyClock(t *testing.T, now time.Time) *fakeClock {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Almaty")
	require.NoError(t, err)
	return &fakeClock{now: now, loc: loc}
}

func testSlotGenerator(clock service.Clock) *service.SlotGenerator {
	return service.NewSlotGenerator(config.ClinicConfig{
		Opening:     "09:00",
		Closing:     "18:00",
		LunchStart:  "13:00",
		LunchEnd:    "14:00",
		SlotMinutes: 30,
	}, clock)
}

type nopEmailSender struct{}

func (nopEmailSender) Send(ctx context.Context, to, subject, body string) error { return nil }

// countingEmailSender tallies deliveries so tests can assert a notification
// actually went out.
type countingEmailSender struct {
	mu    sync.Mutex
	count int
}

func (s *countingEmailSender) Send(ctx context.Context, to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	return nil
}

func (s *countingEmailSender) sent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

type nopSMSSender struct{}

func (nopSMSSender) SendSMS(ctx context.Context, to, body string) error { return nil }

func testNotifications(clock service.Clock) *service.NotificationService {
	return service.NewNotificationService(testLogger(), clock, nopEmailSender{}, nopSMSSender{})
}

// appointmentRepoMock implements repository.AppointmentRepository with
// overridable behaviors. Unset functions return zero values.
type appointmentRepoMock struct {
	createFn          func(appointment *entity.Appointment) error
	findByIDFn        func(id uuid.UUID) (*entity.Appointment, error)
	findByPatientFn   func(patientID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	findByDoctorFn    func(doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	existsDoctorFn    func(doctorID uuid.UUID, at time.Time) (bool, error)
	existsPatientFn   func(patientID uuid.UUID, at time.Time) (bool, error)
	findScheduledFn   func(doctorID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)
	markCompletedFn   func(id uuid.UUID, diagnosis string) (int64, error)
	cancelScheduledFn func(id uuid.UUID) (int64, error)
	deleteScheduledFn func(id uuid.UUID) (int64, error)
	cancelMissedFn    func(doctorID uuid.UUID, before time.Time) (int64, error)
}

func (m *appointmentRepoMock) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if m.createFn != nil {
		return m.createFn(appointment)
	}
	appointment.ID = uuid.New()
	return nil
}

func (m *appointmentRepoMock) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, nil
}

func (m *appointmentRepoMock) FindByPatientID(db *gorm.DB, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	if m.findByPatientFn != nil {
		return m.findByPatientFn(patientID, filter)
	}
	return nil, nil
}

func (m *appointmentRepoMock) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	if m.findByDoctorFn != nil {
		return m.findByDoctorFn(doctorID, filter)
	}
	return nil, nil
}

func (m *appointmentRepoMock) ExistsScheduledForDoctorAt(db *gorm.DB, doctorID uuid.UUID, at time.Time) (bool, error) {
	if m.existsDoctorFn != nil {
		return m.existsDoctorFn(doctorID, at)
	}
	return false, nil
}

func (m *appointmentRepoMock) ExistsScheduledForPatientAt(db *gorm.DB, patientID uuid.UUID, at time.Time) (bool, error) {
	if m.existsPatientFn != nil {
		return m.existsPatientFn(patientID, at)
	}
	return false, nil
}

func (m *appointmentRepoMock) FindScheduledByDoctorBetween(db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	if m.findScheduledFn != nil {
		return m.findScheduledFn(doctorID, from, to)
	}
	return nil, nil
}

func (m *appointmentRepoMock) MarkCompleted(db *gorm.DB, id uuid.UUID, diagnosis string) (int64, error) {
	if m.markCompletedFn != nil {
		return m.markCompletedFn(id, diagnosis)
	}
	return 1, nil
}

func (m *appointmentRepoMock) CancelScheduled(db *gorm.DB, id uuid.UUID) (int64, error) {
	if m.cancelScheduledFn != nil {
		return m.cancelScheduledFn(id)
	}
	return 1, nil
}

func (m *appointmentRepoMock) DeleteScheduled(db *gorm.DB, id uuid.UUID) (int64, error) {
	if m.deleteScheduledFn != nil {
		return m.deleteScheduledFn(id)
	}
	return 1, nil
}

func (m *appointmentRepoMock) CancelMissedByDoctor(db *gorm.DB, doctorID uuid.UUID, before time.Time) (int64, error) {
	if m.cancelMissedFn != nil {
		return m.cancelMissedFn(doctorID, before)
	}
	return 0, nil
}

type doctorProfileRepoMock struct {
	findByUserIDFn func(userID uuid.UUID) (*entity.DoctorProfile, error)
	findAllFn      func() ([]entity.DoctorProfile, error)
	updateFn       func(profile *entity.DoctorProfile) error
}

func (m *doctorProfileRepoMock) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return nil
}

func (m *doctorProfileRepoMock) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(userID)
	}
	return nil, nil
}

func (m *doctorProfileRepoMock) FindAll(db *gorm.DB) ([]entity.DoctorProfile, error) {
	if m.findAllFn != nil {
		return m.findAllFn()
	}
	return nil, nil
}

func (m *doctorProfileRepoMock) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	if m.updateFn != nil {
		return m.updateFn(profile)
	}
	return nil
}

type patientProfileRepoMock struct {
	findByUserIDFn func(userID uuid.UUID) (*entity.PatientProfile, error)
}

func (m *patientProfileRepoMock) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	return nil
}

func (m *patientProfileRepoMock) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(userID)
	}
	return nil, nil
}

func (m *patientProfileRepoMock) FindAll(db *gorm.DB) ([]entity.PatientProfile, error) {
	return nil, nil
}

func (m *patientProfileRepoMock) Update(db *gorm.DB, profile *entity.PatientProfile) error {
	return nil
}

type medicalRecordRepoMock struct {
	mu      sync.Mutex
	created []*entity.MedicalRecord

	findByAppointmentFn func(appointmentID uuid.UUID) (*entity.MedicalRecord, error)
	findByPatientFn     func(patientID uuid.UUID) ([]entity.MedicalRecord, error)
}

func (m *medicalRecordRepoMock) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record.ID = uuid.New()
	m.created = append(m.created, record)
	return nil
}

func (m *medicalRecordRepoMock) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.MedicalRecord, error) {
	if m.findByAppointmentFn != nil {
		return m.findByAppointmentFn(appointmentID)
	}
	return nil, nil
}

func (m *medicalRecordRepoMock) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalRecord, error) {
	if m.findByPatientFn != nil {
		return m.findByPatientFn(patientID)
	}
	return nil, nil
}

type prescriptionRepoMock struct {
	mu      sync.Mutex
	created []*entity.Prescription
}

func (m *prescriptionRepoMock) Create(db *gorm.DB, prescription *entity.Prescription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prescription.ID = uuid.New()
	m.created = append(m.created, prescription)
	return nil
}

func (m *prescriptionRepoMock) FindByMedicalRecordID(db *gorm.DB, medicalRecordID uuid.UUID) ([]entity.Prescription, error) {
	return nil, nil
}

type medicineRepoMock struct {
	existsFn func(id uuid.UUID) (bool, error)
}

func (m *medicineRepoMock) Create(db *gorm.DB, medicine *entity.Medicine) error { return nil }

func (m *medicineRepoMock) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Medicine, error) {
	return nil, nil
}

func (m *medicineRepoMock) FindAll(db *gorm.DB) ([]entity.Medicine, error) { return nil, nil }

func (m *medicineRepoMock) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(id)
	}
	return true, nil
}

func (m *medicineRepoMock) Update(db *gorm.DB, medicine *entity.Medicine) error { return nil }

func (m *medicineRepoMock) Delete(db *gorm.DB, id uuid.UUID) (int64, error) { return 1, nil }

type templateRepoMock struct {
	mu         sync.Mutex
	usageCalls []uuid.UUID

	findByIDFn func(id uuid.UUID) (*entity.DiagnosisTemplate, error)
}

func (m *templateRepoMock) Create(db *gorm.DB, template *entity.DiagnosisTemplate) error {
	return nil
}

func (m *templateRepoMock) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DiagnosisTemplate, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, nil
}

func (m *templateRepoMock) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DiagnosisTemplate, error) {
	return nil, nil
}

func (m *templateRepoMock) IncrementUsage(db *gorm.DB, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usageCalls = append(m.usageCalls, id)
	return nil
}

func (m *templateRepoMock) Delete(db *gorm.DB, id uuid.UUID) (int64, error) { return 1, nil }

type userRepoMock struct {
	createFn      func(user *entity.User) error
	findByIDFn    func(id uuid.UUID) (*entity.User, error)
	findByEmailFn func(email string) (*entity.User, error)

	mu      sync.Mutex
	created []*entity.User
}

func (m *userRepoMock) Create(db *gorm.DB, user *entity.User) error {
	if m.createFn != nil {
		return m.createFn(user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = uuid.New()
	m.created = append(m.created, user)
	return nil
}

func (m *userRepoMock) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, nil
}

func (m *userRepoMock) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(email)
	}
	return nil, nil
}

func (m *userRepoMock) Update(db *gorm.DB, user *entity.User) error { return nil }

func (m *userRepoMock) Delete(db *gorm.DB, id uuid.UUID) (int64, error) { return 1, nil }

type roleRepoMock struct{}

func (m *roleRepoMock) FindByID(db *gorm.DB, id int) (*entity.Role, error) {
	return &entity.Role{ID: id}, nil
}

func (m *roleRepoMock) FindByName(db *gorm.DB, name string) (*entity.Role, error) {
	return nil, nil
}

// auditLogRepoMock records actions so tests can assert the trail was written.
type auditLogRepoMock struct {
	mu      sync.Mutex
	actions []string
}

func (m *auditLogRepoMock) Create(db *gorm.DB, auditLog *entity.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, auditLog.Action)
	return nil
}

func (m *auditLogRepoMock) FindAll(db *gorm.DB, limit, offset int) ([]entity.AuditLog, int64, error) {
	return nil, 0, nil
}

func (m *auditLogRepoMock) recorded() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.actions))
	copy(out, m.actions)
	return out
}
