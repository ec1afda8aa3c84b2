package repository

import (
	"context"

	"practice-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type InsuranceClaimRepository interface {
	Create(ctx context.Context, db *gorm.DB, claim *entity.InsuranceClaim) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.InsuranceClaim, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.InsuranceClaim, error)
}
