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
	ErrPrescriptionNotFound       = errors.New("prescription not found")
	ErrPrescriptionPatientMissing = errors.New("referenced patient does not exist")
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Get(ctx context.Context, id int64) (*dto.PrescriptionResponse, error)
	ListByPatient(ctx context.Context, patientID int64) (*dto.PrescriptionListResponse, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	userRepo         repository.UserRepository
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	userRepo repository.UserRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		userRepo:         userRepo,
	}
}

func (u *prescriptionUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	datePrescribed := req.DatePrescribed
	if datePrescribed.IsZero() {
		datePrescribed = time.Now().UTC()
	}

	prescription := &entity.Prescription{
		PatientID:      req.PatientID,
		Medication:     req.Medication,
		Dosage:         req.Dosage,
		Instructions:   req.Instructions,
		DatePrescribed: datePrescribed,
	}
	if err := u.prescriptionRepo.Create(ctx, tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		if isForeignKeyError(err) {
			return nil, ErrPrescriptionPatientMissing
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) Get(ctx context.Context, id int64) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) ListByPatient(ctx context.Context, patientID int64) (*dto.PrescriptionListResponse, error) {
	patient, err := u.userRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrUserNotFound
	}

	prescriptions, err := u.prescriptionRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	return converter.PrescriptionsToListResponse(prescriptions), nil
}
