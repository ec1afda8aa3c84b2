package usecase

import (
	"context"
	"testing"

	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/domain/entity"
	"practice-management-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBillingUsecasesForTest(t *testing.T) (BillingUsecase, InsuranceClaimUsecase, UserUsecase) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	userRepo := repository.NewUserRepository()
	return NewBillingUsecase(db, log, repository.NewBillingRepository(), userRepo),
		NewInsuranceClaimUsecase(db, log, repository.NewInsuranceClaimRepository(), userRepo),
		NewUserUsecase(db, log, userRepo)
}

func TestBillingCreateThenGet(t *testing.T) {
	billingUsecase, _, userUsecase := newBillingUsecasesForTest(t)
	ctx := context.Background()
	patient := mustCreateUser(t, userUsecase, "alice", "a@x.com")

	created, err := billingUsecase.Create(ctx, &dto.CreateBillingRequest{
		PatientID: patient.ID,
		Service:   "Consultation",
		Amount:    12500,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12500), created.Amount)
	assert.False(t, created.Date.IsZero())
	assert.Nil(t, created.InsuranceClaimID)

	got, err := billingUsecase.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Consultation", got.Service)
	assert.Equal(t, patient.ID, got.PatientID)
}

func TestBillingCreateUnknownReferencesFail(t *testing.T) {
	billingUsecase, _, userUsecase := newBillingUsecasesForTest(t)
	ctx := context.Background()
	patient := mustCreateUser(t, userUsecase, "bob", "b@x.com")

	_, err := billingUsecase.Create(ctx, &dto.CreateBillingRequest{
		PatientID: 9999,
		Service:   "Ghost patient",
		Amount:    100,
	})
	assert.ErrorIs(t, err, ErrBillingReferenceMissing)

	missingClaim := int64(9999)
	_, err = billingUsecase.Create(ctx, &dto.CreateBillingRequest{
		PatientID:        patient.ID,
		Service:          "Ghost claim",
		Amount:           100,
		InsuranceClaimID: &missingClaim,
	})
	assert.ErrorIs(t, err, ErrBillingReferenceMissing)
}

func TestBillingLinksInsuranceClaim(t *testing.T) {
	billingUsecase, claimUsecase, userUsecase := newBillingUsecasesForTest(t)
	ctx := context.Background()
	patient := mustCreateUser(t, userUsecase, "carol", "c@x.com")

	claim, err := claimUsecase.Create(ctx, &dto.CreateInsuranceClaimRequest{
		PatientID:   patient.ID,
		ClaimNumber: "CLM-1001",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ClaimStatusSubmitted, claim.Status)
	assert.False(t, claim.SubmissionDate.IsZero())

	billing, err := billingUsecase.Create(ctx, &dto.CreateBillingRequest{
		PatientID:            patient.ID,
		Service:              "X-ray",
		Amount:               40000,
		InsuranceClaimStatus: "filed",
		InsuranceClaimID:     &claim.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, billing.InsuranceClaimID)
	assert.Equal(t, claim.ID, *billing.InsuranceClaimID)
}

func TestInsuranceClaimNumberConflict(t *testing.T) {
	_, claimUsecase, userUsecase := newBillingUsecasesForTest(t)
	ctx := context.Background()
	patient := mustCreateUser(t, userUsecase, "dave", "d@x.com")

	_, err := claimUsecase.Create(ctx, &dto.CreateInsuranceClaimRequest{
		PatientID:   patient.ID,
		ClaimNumber: "CLM-2002",
	})
	require.NoError(t, err)

	_, err = claimUsecase.Create(ctx, &dto.CreateInsuranceClaimRequest{
		PatientID:   patient.ID,
		ClaimNumber: "CLM-2002",
	})
	assert.ErrorIs(t, err, ErrClaimNumberTaken)
}

func TestInsuranceClaimGetAndList(t *testing.T) {
	_, claimUsecase, userUsecase := newBillingUsecasesForTest(t)
	ctx := context.Background()
	patient := mustCreateUser(t, userUsecase, "erin", "e@x.com")

	created, err := claimUsecase.Create(ctx, &dto.CreateInsuranceClaimRequest{
		PatientID:   patient.ID,
		ClaimNumber: "CLM-3003",
		Status:      entity.ClaimStatusApproved,
	})
	require.NoError(t, err)

	got, err := claimUsecase.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ClaimStatusApproved, got.Status)

	list, err := claimUsecase.ListByPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	_, err = claimUsecase.Get(ctx, 9999)
	assert.ErrorIs(t, err, ErrInsuranceClaimNotFound)
}
