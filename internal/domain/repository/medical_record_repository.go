package repository

import (
	"context"

	"practice-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(ctx context.Context, db *gorm.DB, record *entity.MedicalRecord) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.MedicalRecord, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.MedicalRecord, error)
}
