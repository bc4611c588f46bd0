package usecase

import (
	"context"
	"testing"

	"clinic-management-backend/internal/delivery/dto"
	"clinic-management-backend/internal/domain/entity"
	"clinic-management-backend/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	usecase AuthUsecase
	mock    sqlmock.Sqlmock
	users   *userRepoMock
	audit   *auditLogRepoMock
	adminID uuid.UUID
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	db, mock := newTestDB(t)
	log := testLogger()

	users := &userRepoMock{}
	audit := &auditLogRepoMock{}

	uc := NewAuthUsecase(
		db,
		log,
		users,
		&roleRepoMock{},
		&doctorProfileRepoMock{},
		&patientProfileRepoMock{},
		service.NewAuditService(db, log, audit),
		nil,
		nil,
		nil,
	)

	return &authFixture{
		usecase: uc,
		mock:    mock,
		users:   users,
		audit:   audit,
		adminID: uuid.New(),
	}
}

func doctorRegistration() *dto.RegisterDoctorRequest {
	return &dto.RegisterDoctorRequest{
		Email:     "marat@example.com",
		Password:  "secret123",
		FullName:  "Marat Bekov",
		IIN:       "880512300123",
		Specialty: "Cardiology",
	}
}

// Working hours are validated before anything is persisted. A malformed
// descriptor must never reach the profile row, where it would poison every
// later booking and availability lookup.
func TestRegisterDoctorRejectsMalformedWorkingHours(t *testing.T) {
	f := newAuthFixture(t)

	req := doctorRegistration()
	req.WorkStart = "99:99"

	_, err := f.usecase.RegisterDoctor(context.Background(), f.adminID, req)

	assert.ErrorIs(t, err, service.ErrInvalidWorkingHours)
	assert.Empty(t, f.users.created)
}

func TestRegisterDoctorRejectsInvertedWorkingHours(t *testing.T) {
	f := newAuthFixture(t)

	req := doctorRegistration()
	req.WorkStart = "18:00"
	req.WorkEnd = "09:00"

	_, err := f.usecase.RegisterDoctor(context.Background(), f.adminID, req)

	assert.ErrorIs(t, err, service.ErrInvalidWorkingHours)
	assert.Empty(t, f.users.created)
}

func TestRegisterDoctorAcceptsEmptyHours(t *testing.T) {
	f := newAuthFixture(t)
	expectTransactions(f.mock, 1)

	resp, err := f.usecase.RegisterDoctor(context.Background(), f.adminID, doctorRegistration())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, entity.RoleDoctor, resp.Role)
	require.Len(t, f.users.created, 1)
	assert.Equal(t, entity.RoleIDDoctor, f.users.created[0].RoleID)
	assert.Contains(t, f.audit.recorded(), entity.AuditActionDoctorCreate)
}

func TestRegisterDoctorAcceptsCustomHours(t *testing.T) {
	f := newAuthFixture(t)
	expectTransactions(f.mock, 1)

	req := doctorRegistration()
	req.WorkStart = "10:00"
	req.WorkEnd = "16:00"
	req.LunchStart = "12:00"
	req.LunchEnd = "12:30"

	_, err := f.usecase.RegisterDoctor(context.Background(), f.adminID, req)

	require.NoError(t, err)
	require.Len(t, f.users.created, 1)
}
