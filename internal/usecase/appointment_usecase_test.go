package usecase

import (
	"context"
	"testing"
	"time"

	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/domain/entity"
	"practice-management-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointmentUsecaseForTest(t *testing.T) (AppointmentUsecase, UserUsecase) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	userRepo := repository.NewUserRepository()
	return NewAppointmentUsecase(db, log, repository.NewAppointmentRepository(), userRepo),
		NewUserUsecase(db, log, userRepo)
}

func TestAppointmentCreateDefaultsToPending(t *testing.T) {
	appointmentUsecase, userUsecase := newAppointmentUsecaseForTest(t)
	ctx := context.Background()
	patient := mustCreateUser(t, userUsecase, "alice", "a@x.com")

	created, err := appointmentUsecase.Create(ctx, &dto.CreateAppointmentRequest{
		PatientID:   patient.ID,
		ProviderID:  42,
		DateTime:    time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
		Description: "Annual checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusPending, created.Status)
	assert.Equal(t, patient.ID, created.PatientID)

	got, err := appointmentUsecase.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Description, got.Description)
	assert.True(t, created.DateTime.Equal(got.DateTime))
}

func TestAppointmentCreateUnknownPatientFails(t *testing.T) {
	appointmentUsecase, _ := newAppointmentUsecaseForTest(t)

	_, err := appointmentUsecase.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   9999,
		ProviderID:  42,
		DateTime:    time.Now().UTC(),
		Description: "No such patient",
	})
	assert.ErrorIs(t, err, ErrAppointmentPatientMissing)
}

func TestAppointmentUpdateAndDelete(t *testing.T) {
	appointmentUsecase, userUsecase := newAppointmentUsecaseForTest(t)
	ctx := context.Background()
	patient := mustCreateUser(t, userUsecase, "bob", "b@x.com")

	created, err := appointmentUsecase.Create(ctx, &dto.CreateAppointmentRequest{
		PatientID:   patient.ID,
		ProviderID:  7,
		DateTime:    time.Now().UTC(),
		Description: "Follow-up",
	})
	require.NoError(t, err)

	updated, err := appointmentUsecase.Update(ctx, created.ID, &dto.UpdateAppointmentRequest{
		Status: entity.AppointmentStatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusConfirmed, updated.Status)
	assert.Equal(t, "Follow-up", updated.Description)

	_, err = appointmentUsecase.Update(ctx, 9999, &dto.UpdateAppointmentRequest{Status: "x"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	require.NoError(t, appointmentUsecase.Delete(ctx, created.ID))
	assert.ErrorIs(t, appointmentUsecase.Delete(ctx, created.ID), ErrAppointmentNotFound)
}

func TestAppointmentListByPatient(t *testing.T) {
	appointmentUsecase, userUsecase := newAppointmentUsecaseForTest(t)
	ctx := context.Background()
	patient := mustCreateUser(t, userUsecase, "carol", "c@x.com")
	other := mustCreateUser(t, userUsecase, "dave", "d@x.com")

	for i, patientID := range []int64{patient.ID, patient.ID, other.ID} {
		_, err := appointmentUsecase.Create(ctx, &dto.CreateAppointmentRequest{
			PatientID:   patientID,
			ProviderID:  1,
			DateTime:    time.Now().UTC().Add(time.Duration(i) * time.Hour),
			Description: "Visit",
		})
		require.NoError(t, err)
	}

	list, err := appointmentUsecase.ListByPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	for _, appointment := range list.Appointments {
		assert.Equal(t, patient.ID, appointment.PatientID)
	}

	_, err = appointmentUsecase.ListByPatient(ctx, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserDeleteBlockedByAppointments(t *testing.T) {
	appointmentUsecase, userUsecase := newAppointmentUsecaseForTest(t)
	ctx := context.Background()
	patient := mustCreateUser(t, userUsecase, "erin", "e@x.com")

	_, err := appointmentUsecase.Create(ctx, &dto.CreateAppointmentRequest{
		PatientID:   patient.ID,
		ProviderID:  1,
		DateTime:    time.Now().UTC(),
		Description: "Blocks deletion",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, userUsecase.Delete(ctx, patient.ID), ErrUserHasRecords)
}
