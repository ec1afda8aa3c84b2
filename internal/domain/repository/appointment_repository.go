package repository

import (
	"context"

	"practice-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Appointment, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.Appointment, error)
	Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
