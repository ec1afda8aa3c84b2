package repository

import (
	"context"

	"practice-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

// MessageRepository has no update or delete: messages are immutable.
type MessageRepository interface {
	Create(ctx context.Context, db *gorm.DB, message *entity.Message) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Message, error)
	FindBySenderID(ctx context.Context, db *gorm.DB, senderID int64) ([]entity.Message, error)
	FindByRecipientID(ctx context.Context, db *gorm.DB, recipientID int64) ([]entity.Message, error)
}
