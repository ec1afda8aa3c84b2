package repository

import (
	"context"
	"errors"

	"practice-management-api/internal/domain/entity"
	domainRepo "practice-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type insuranceClaimRepository struct{}

func NewInsuranceClaimRepository() domainRepo.InsuranceClaimRepository {
	return &insuranceClaimRepository{}
}

func (r *insuranceClaimRepository) Create(ctx context.Context, db *gorm.DB, claim *entity.InsuranceClaim) error {
	return db.WithContext(ctx).Create(claim).Error
}

func (r *insuranceClaimRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.InsuranceClaim, error) {
	var claim entity.InsuranceClaim
	err := db.WithContext(ctx).Where("id = ?", id).First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &claim, nil
}

func (r *insuranceClaimRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.InsuranceClaim, error) {
	var claims []entity.InsuranceClaim
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).Order("submission_date").Find(&claims).Error
	if err != nil {
		return nil, err
	}
	return claims, nil
}
