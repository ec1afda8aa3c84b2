package repository

import (
	"context"

	"practice-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Prescription, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.Prescription, error)
}
