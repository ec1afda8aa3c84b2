package usecase

import (
	"context"
	"testing"
	"time"

	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrescriptionUsecaseForTest(t *testing.T) (PrescriptionUsecase, UserUsecase) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	userRepo := repository.NewUserRepository()
	return NewPrescriptionUsecase(db, log, repository.NewPrescriptionRepository(), userRepo),
		NewUserUsecase(db, log, userRepo)
}

func TestPrescriptionCreateDefaultsDate(t *testing.T) {
	prescriptionUsecase, userUsecase := newPrescriptionUsecaseForTest(t)
	ctx := context.Background()
	patient := mustCreateUser(t, userUsecase, "alice", "a@x.com")

	created, err := prescriptionUsecase.Create(ctx, &dto.CreatePrescriptionRequest{
		PatientID:  patient.ID,
		Medication: "Amoxicillin",
		Dosage:     "500mg",
	})
	require.NoError(t, err)
	assert.False(t, created.DatePrescribed.IsZero())

	explicit := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	withDate, err := prescriptionUsecase.Create(ctx, &dto.CreatePrescriptionRequest{
		PatientID:      patient.ID,
		Medication:     "Ibuprofen",
		Dosage:         "200mg",
		Instructions:   "With food",
		DatePrescribed: explicit,
	})
	require.NoError(t, err)
	assert.True(t, explicit.Equal(withDate.DatePrescribed))
}

func TestPrescriptionCreateUnknownPatientFails(t *testing.T) {
	prescriptionUsecase, _ := newPrescriptionUsecaseForTest(t)

	_, err := prescriptionUsecase.Create(context.Background(), &dto.CreatePrescriptionRequest{
		PatientID:  9999,
		Medication: "Nothing",
		Dosage:     "0mg",
	})
	assert.ErrorIs(t, err, ErrPrescriptionPatientMissing)
}

func TestPrescriptionGetAndList(t *testing.T) {
	prescriptionUsecase, userUsecase := newPrescriptionUsecaseForTest(t)
	ctx := context.Background()
	patient := mustCreateUser(t, userUsecase, "bob", "b@x.com")

	created, err := prescriptionUsecase.Create(ctx, &dto.CreatePrescriptionRequest{
		PatientID:  patient.ID,
		Medication: "Lisinopril",
		Dosage:     "10mg",
	})
	require.NoError(t, err)

	got, err := prescriptionUsecase.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lisinopril", got.Medication)

	list, err := prescriptionUsecase.ListByPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	_, err = prescriptionUsecase.Get(ctx, 9999)
	assert.ErrorIs(t, err, ErrPrescriptionNotFound)
}
