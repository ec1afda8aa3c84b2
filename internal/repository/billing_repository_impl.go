package repository

import (
	"context"
	"errors"

	"practice-management-api/internal/domain/entity"
	domainRepo "practice-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type billingRepository struct{}

func NewBillingRepository() domainRepo.BillingRepository {
	return &billingRepository{}
}

func (r *billingRepository) Create(ctx context.Context, db *gorm.DB, billing *entity.Billing) error {
	return db.WithContext(ctx).Create(billing).Error
}

func (r *billingRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Billing, error) {
	var billing entity.Billing
	err := db.WithContext(ctx).Where("id = ?", id).First(&billing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &billing, nil
}

func (r *billingRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.Billing, error) {
	var records []entity.Billing
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).Order("date").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
