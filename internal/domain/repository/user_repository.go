package repository

import (
	"context"

	"practice-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.User, error)
	Update(ctx context.Context, db *gorm.DB, user *entity.User) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
