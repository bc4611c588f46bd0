package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-management-backend/internal/delivery/dto"
	"clinic-management-backend/internal/domain/entity"
	"clinic-management-backend/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type receptionFixture struct {
	usecase       ReceptionUsecase
	mock          sqlmock.Sqlmock
	appointments  *appointmentRepoMock
	records       *medicalRecordRepoMock
	prescriptions *prescriptionRepoMock
	medicines     *medicineRepoMock
	templates     *templateRepoMock
	audit         *auditLogRepoMock
	notifications *service.NotificationService
	doctorID      uuid.UUID
	patientID     uuid.UUID
	appointmentID uuid.UUID
}

func newReceptionFixture(t *testing.T) *receptionFixture {
	t.Helper()

	db, mock := newTestDB(t)
	log := testLogger()
	clock := almatyClock(t, time.Date(2026, 9, 7, 3, 0, 0, 0, time.UTC))

	doctorID := uuid.New()
	patientID := uuid.New()
	appointmentID := uuid.New()

	appointments := &appointmentRepoMock{
		findByIDFn: func(id uuid.UUID) (*entity.Appointment, error) {
			if id != appointmentID {
				return nil, nil
			}
			return &entity.Appointment{
				ID:          id,
				PatientID:   patientID,
				DoctorID:    doctorID,
				ScheduledAt: time.Date(2026, 9, 7, 5, 0, 0, 0, time.UTC),
				Status:      entity.AppointmentStatusScheduled,
			}, nil
		},
	}
	records := &medicalRecordRepoMock{}
	prescriptions := &prescriptionRepoMock{}
	medicines := &medicineRepoMock{}
	templates := &templateRepoMock{}
	audit := &auditLogRepoMock{}
	notifications := testNotifications(clock)

	uc := NewReceptionUsecase(
		db,
		log,
		appointments,
		records,
		prescriptions,
		medicines,
		templates,
		notifications,
		service.NewAuditService(db, log, audit),
	)

	return &receptionFixture{
		usecase:       uc,
		mock:          mock,
		appointments:  appointments,
		records:       records,
		prescriptions: prescriptions,
		medicines:     medicines,
		templates:     templates,
		audit:         audit,
		notifications: notifications,
		doctorID:      doctorID,
		patientID:     patientID,
		appointmentID: appointmentID,
	}
}

func TestCompleteCreatesRecordAndDropsUnknownMedicines(t *testing.T) {
	f := newReceptionFixture(t)
	expectTransactions(f.mock, 1)

	knownMedicine := uuid.New()
	unknownMedicine := uuid.New()
	f.medicines.existsFn = func(id uuid.UUID) (bool, error) {
		return id == knownMedicine, nil
	}

	resp, err := f.usecase.Complete(context.Background(), f.doctorID, f.appointmentID, &dto.CompleteAppointmentRequest{
		Diagnosis:  "ARVI",
		Complaints: "Fever and cough",
		Prescriptions: []dto.PrescriptionRequest{
			{MedicineID: knownMedicine, Dosage: "500mg", Frequency: "2x daily", Duration: "5 days"},
			{MedicineID: unknownMedicine, Dosage: "10ml", Frequency: "1x daily", Duration: "3 days"},
		},
	})
	f.notifications.Wait()

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 1, resp.DroppedPrescriptions)

	require.Len(t, f.records.created, 1)
	assert.Equal(t, "ARVI", f.records.created[0].Diagnosis)
	assert.Equal(t, "Fever and cough", f.records.created[0].Complaints)

	require.Len(t, f.prescriptions.created, 1)
	assert.Equal(t, knownMedicine, f.prescriptions.created[0].MedicineID)

	assert.Contains(t, f.audit.recorded(), entity.AuditActionAppointmentComplete)
}

func TestCompleteRequiresDiagnosis(t *testing.T) {
	f := newReceptionFixture(t)
	expectTransactions(f.mock, 1)

	markCalled := false
	f.appointments.markCompletedFn = func(id uuid.UUID, diagnosis string) (int64, error) {
		markCalled = true
		return 1, nil
	}

	_, err := f.usecase.Complete(context.Background(), f.doctorID, f.appointmentID, &dto.CompleteAppointmentRequest{
		Complaints: "Fever",
	})

	assert.ErrorIs(t, err, ErrDiagnosisRequired)
	assert.False(t, markCalled, "appointment must stay scheduled")
	assert.Empty(t, f.records.created)
}

func TestCompleteFillsDiagnosisFromTemplate(t *testing.T) {
	f := newReceptionFixture(t)
	expectTransactions(f.mock, 1)

	templateID := uuid.New()
	f.templates.findByIDFn = func(id uuid.UUID) (*entity.DiagnosisTemplate, error) {
		return &entity.DiagnosisTemplate{
			ID:              templateID,
			DoctorID:        f.doctorID,
			Name:            "Seasonal flu",
			Diagnosis:       "Influenza",
			Recommendations: "Rest, fluids, paracetamol",
		}, nil
	}

	var completedWith string
	f.appointments.markCompletedFn = func(id uuid.UUID, diagnosis string) (int64, error) {
		completedWith = diagnosis
		return 1, nil
	}

	resp, err := f.usecase.Complete(context.Background(), f.doctorID, f.appointmentID, &dto.CompleteAppointmentRequest{
		TemplateID: &templateID,
	})
	f.notifications.Wait()

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Influenza", completedWith)

	require.Len(t, f.records.created, 1)
	assert.Equal(t, "Influenza", f.records.created[0].Diagnosis)
	assert.Equal(t, "Rest, fluids, paracetamol", f.records.created[0].Recommendations)

	require.Len(t, f.templates.usageCalls, 1)
	assert.Equal(t, templateID, f.templates.usageCalls[0])
}

func TestCompleteRejectsForeignTemplate(t *testing.T) {
	f := newReceptionFixture(t)
	expectTransactions(f.mock, 1)

	templateID := uuid.New()
	f.templates.findByIDFn = func(id uuid.UUID) (*entity.DiagnosisTemplate, error) {
		return &entity.DiagnosisTemplate{ID: templateID, DoctorID: uuid.New(), Diagnosis: "Influenza"}, nil
	}

	_, err := f.usecase.Complete(context.Background(), f.doctorID, f.appointmentID, &dto.CompleteAppointmentRequest{
		TemplateID: &templateID,
	})

	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestCompleteByAnotherDoctor(t *testing.T) {
	f := newReceptionFixture(t)
	expectTransactions(f.mock, 1)

	_, err := f.usecase.Complete(context.Background(), uuid.New(), f.appointmentID, &dto.CompleteAppointmentRequest{
		Diagnosis: "ARVI",
	})

	assert.ErrorIs(t, err, ErrAppointmentNotOwned)
}

func TestCompleteTerminalAppointment(t *testing.T) {
	f := newReceptionFixture(t)
	expectTransactions(f.mock, 1)

	f.appointments.markCompletedFn = func(id uuid.UUID, diagnosis string) (int64, error) {
		return 0, nil
	}

	_, err := f.usecase.Complete(context.Background(), f.doctorID, f.appointmentID, &dto.CompleteAppointmentRequest{
		Diagnosis: "ARVI",
	})

	assert.ErrorIs(t, err, ErrAppointmentNotScheduled)
	assert.Empty(t, f.records.created)
}

func TestGetRecordByAppointmentAccessDenied(t *testing.T) {
	f := newReceptionFixture(t)

	_, err := f.usecase.GetRecordByAppointment(context.Background(), uuid.New(), entity.RoleIDPatient, f.appointmentID)

	assert.ErrorIs(t, err, ErrRecordAccessDenied)
}

func TestGetRecordByAppointmentMissing(t *testing.T) {
	f := newReceptionFixture(t)

	_, err := f.usecase.GetRecordByAppointment(context.Background(), f.patientID, entity.RoleIDPatient, f.appointmentID)

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestGetRecordByAppointment(t *testing.T) {
	f := newReceptionFixture(t)

	recordID := uuid.New()
	f.records.findByAppointmentFn = func(appointmentID uuid.UUID) (*entity.MedicalRecord, error) {
		return &entity.MedicalRecord{
			ID:            recordID,
			AppointmentID: appointmentID,
			Diagnosis:     "ARVI",
		}, nil
	}

	resp, err := f.usecase.GetRecordByAppointment(context.Background(), f.doctorID, entity.RoleIDDoctor, f.appointmentID)

	require.NoError(t, err)
	assert.Equal(t, recordID, resp.ID)
	assert.Equal(t, "ARVI", resp.Diagnosis)
}
