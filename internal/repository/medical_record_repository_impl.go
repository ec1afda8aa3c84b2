package repository

import (
	"context"
	"errors"

	"practice-management-api/internal/domain/entity"
	domainRepo "practice-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(ctx context.Context, db *gorm.DB, record *entity.MedicalRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *medicalRecordRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).Order("created_at").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
