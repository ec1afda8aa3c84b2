package usecase

import (
	"context"
	"errors"
	"time"

	"practice-management-api/internal/converter"
	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/domain/entity"
	"practice-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInsuranceClaimNotFound       = errors.New("insurance claim not found")
	ErrClaimNumberTaken             = errors.New("claim number already exists")
	ErrInsuranceClaimPatientMissing = errors.New("referenced patient does not exist")
)

type InsuranceClaimUsecase interface {
	Create(ctx context.Context, req *dto.CreateInsuranceClaimRequest) (*dto.InsuranceClaimResponse, error)
	Get(ctx context.Context, id int64) (*dto.InsuranceClaimResponse, error)
	ListByPatient(ctx context.Context, patientID int64) (*dto.InsuranceClaimListResponse, error)
}

type insuranceClaimUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	claimRepo repository.InsuranceClaimRepository
	userRepo  repository.UserRepository
}

func NewInsuranceClaimUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	claimRepo repository.InsuranceClaimRepository,
	userRepo repository.UserRepository,
) InsuranceClaimUsecase {
	return &insuranceClaimUsecase{
		db:        db,
		log:       log,
		claimRepo: claimRepo,
		userRepo:  userRepo,
	}
}

func (u *insuranceClaimUsecase) Create(ctx context.Context, req *dto.CreateInsuranceClaimRequest) (*dto.InsuranceClaimResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	status := req.Status
	if status == "" {
		status = entity.ClaimStatusSubmitted
	}
	submissionDate := req.SubmissionDate
	if submissionDate.IsZero() {
		submissionDate = time.Now().UTC()
	}

	claim := &entity.InsuranceClaim{
		PatientID:      req.PatientID,
		ClaimNumber:    req.ClaimNumber,
		Status:         status,
		SubmissionDate: submissionDate,
	}
	if err := u.claimRepo.Create(ctx, tx, claim); err != nil {
		u.log.Warnf("Failed to create insurance claim: %+v", err)
		if isDuplicateKeyError(err) {
			return nil, ErrClaimNumberTaken
		}
		if isForeignKeyError(err) {
			return nil, ErrInsuranceClaimPatientMissing
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.InsuranceClaimToResponse(claim), nil
}

func (u *insuranceClaimUsecase) Get(ctx context.Context, id int64) (*dto.InsuranceClaimResponse, error) {
	claim, err := u.claimRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find insurance claim: %+v", err)
		return nil, err
	}
	if claim == nil {
		return nil, ErrInsuranceClaimNotFound
	}

	return converter.InsuranceClaimToResponse(claim), nil
}

func (u *insuranceClaimUsecase) ListByPatient(ctx context.Context, patientID int64) (*dto.InsuranceClaimListResponse, error) {
	patient, err := u.userRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrUserNotFound
	}

	claims, err := u.claimRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list insurance claims: %+v", err)
		return nil, err
	}

	return converter.InsuranceClaimsToListResponse(claims), nil
}
