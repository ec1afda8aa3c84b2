package repository

import (
	"context"

	"practice-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type BillingRepository interface {
	Create(ctx context.Context, db *gorm.DB, billing *entity.Billing) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Billing, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.Billing, error)
}
