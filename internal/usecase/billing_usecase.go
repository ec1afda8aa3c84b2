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
	ErrBillingNotFound = errors.New("billing record not found")
	// ErrBillingReferenceMissing covers both a missing patient and a
	// missing linked insurance claim.
	ErrBillingReferenceMissing = errors.New("referenced patient or insurance claim does not exist")
)

type BillingUsecase interface {
	Create(ctx context.Context, req *dto.CreateBillingRequest) (*dto.BillingResponse, error)
	Get(ctx context.Context, id int64) (*dto.BillingResponse, error)
	ListByPatient(ctx context.Context, patientID int64) (*dto.BillingListResponse, error)
}

type billingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	billingRepo repository.BillingRepository
	userRepo    repository.UserRepository
}

func NewBillingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	billingRepo repository.BillingRepository,
	userRepo repository.UserRepository,
) BillingUsecase {
	return &billingUsecase{
		db:          db,
		log:         log,
		billingRepo: billingRepo,
		userRepo:    userRepo,
	}
}

func (u *billingUsecase) Create(ctx context.Context, req *dto.CreateBillingRequest) (*dto.BillingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	billing := &entity.Billing{
		PatientID:            req.PatientID,
		Service:              req.Service,
		Amount:               req.Amount,
		Date:                 time.Now().UTC(),
		InsuranceClaimStatus: req.InsuranceClaimStatus,
		InsuranceClaimID:     req.InsuranceClaimID,
	}
	if err := u.billingRepo.Create(ctx, tx, billing); err != nil {
		u.log.Warnf("Failed to create billing record: %+v", err)
		if isForeignKeyError(err) {
			return nil, ErrBillingReferenceMissing
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BillingToResponse(billing), nil
}

func (u *billingUsecase) Get(ctx context.Context, id int64) (*dto.BillingResponse, error) {
	billing, err := u.billingRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find billing record: %+v", err)
		return nil, err
	}
	if billing == nil {
		return nil, ErrBillingNotFound
	}

	return converter.BillingToResponse(billing), nil
}

func (u *billingUsecase) ListByPatient(ctx context.Context, patientID int64) (*dto.BillingListResponse, error) {
	patient, err := u.userRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrUserNotFound
	}

	records, err := u.billingRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list billing records: %+v", err)
		return nil, err
	}

	return converter.BillingToListResponse(records), nil
}
