package repository

import (
	"context"
	"errors"

	"practice-management-api/internal/domain/entity"
	domainRepo "practice-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error {
	return db.WithContext(ctx).Create(prescription).Error
}

func (r *prescriptionRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.WithContext(ctx).Where("id = ?", id).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).Order("date_prescribed").Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}
