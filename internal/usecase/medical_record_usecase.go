package usecase

import (
	"context"
	"errors"

	"practice-management-api/internal/converter"
	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/domain/entity"
	"practice-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicalRecordNotFound       = errors.New("medical record not found")
	ErrMedicalRecordPatientMissing = errors.New("referenced patient does not exist")
)

type MedicalRecordUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	Get(ctx context.Context, id int64) (*dto.MedicalRecordResponse, error)
	ListByPatient(ctx context.Context, patientID int64) (*dto.MedicalRecordListResponse, error)
}

type medicalRecordUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	recordRepo repository.MedicalRecordRepository
	userRepo   repository.UserRepository
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	userRepo repository.UserRepository,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:         db,
		log:        log,
		recordRepo: recordRepo,
		userRepo:   userRepo,
	}
}

func (u *medicalRecordUsecase) Create(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record := &entity.MedicalRecord{
		PatientID:   req.PatientID,
		Document:    req.Document,
		Description: req.Description,
	}
	if err := u.recordRepo.Create(ctx, tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		if isForeignKeyError(err) {
			return nil, ErrMedicalRecordPatientMissing
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) Get(ctx context.Context, id int64) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) ListByPatient(ctx context.Context, patientID int64) (*dto.MedicalRecordListResponse, error) {
	patient, err := u.userRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrUserNotFound
	}

	records, err := u.recordRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordsToListResponse(records), nil
}
