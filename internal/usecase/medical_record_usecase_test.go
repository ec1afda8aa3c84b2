package usecase

import (
	"context"
	"testing"

	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMedicalRecordUsecaseForTest(t *testing.T) (MedicalRecordUsecase, UserUsecase) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	userRepo := repository.NewUserRepository()
	return NewMedicalRecordUsecase(db, log, repository.NewMedicalRecordRepository(), userRepo),
		NewUserUsecase(db, log, userRepo)
}

func TestMedicalRecordCreateThenGet(t *testing.T) {
	recordUsecase, userUsecase := newMedicalRecordUsecaseForTest(t)
	ctx := context.Background()
	patient := mustCreateUser(t, userUsecase, "alice", "a@x.com")

	created, err := recordUsecase.Create(ctx, &dto.CreateMedicalRecordRequest{
		PatientID:   patient.ID,
		Document:    "Blood panel normal.",
		Description: "Lab results",
	})
	require.NoError(t, err)

	got, err := recordUsecase.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blood panel normal.", got.Document)
	assert.Equal(t, "Lab results", got.Description)

	_, err = recordUsecase.Get(ctx, 9999)
	assert.ErrorIs(t, err, ErrMedicalRecordNotFound)
}

func TestMedicalRecordCreateUnknownPatientFails(t *testing.T) {
	recordUsecase, _ := newMedicalRecordUsecaseForTest(t)

	_, err := recordUsecase.Create(context.Background(), &dto.CreateMedicalRecordRequest{
		PatientID: 9999,
		Document:  "Orphan document",
	})
	assert.ErrorIs(t, err, ErrMedicalRecordPatientMissing)
}

func TestMedicalRecordListByPatient(t *testing.T) {
	recordUsecase, userUsecase := newMedicalRecordUsecaseForTest(t)
	ctx := context.Background()
	patient := mustCreateUser(t, userUsecase, "bob", "b@x.com")

	for _, doc := range []string{"Visit one", "Visit two"} {
		_, err := recordUsecase.Create(ctx, &dto.CreateMedicalRecordRequest{
			PatientID: patient.ID,
			Document:  doc,
		})
		require.NoError(t, err)
	}

	list, err := recordUsecase.ListByPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)

	_, err = recordUsecase.ListByPatient(ctx, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
