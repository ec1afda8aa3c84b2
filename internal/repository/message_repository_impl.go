package repository

import (
	"context"
	"errors"

	"practice-management-api/internal/domain/entity"
	domainRepo "practice-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type messageRepository struct{}

func NewMessageRepository() domainRepo.MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(ctx context.Context, db *gorm.DB, message *entity.Message) error {
	return db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Message, error) {
	var message entity.Message
	err := db.WithContext(ctx).Where("id = ?", id).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) FindBySenderID(ctx context.Context, db *gorm.DB, senderID int64) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).Where("sender_id = ?", senderID).Order("timestamp").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) FindByRecipientID(ctx context.Context, db *gorm.DB, recipientID int64) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).Where("recipient_id = ?", recipientID).Order("timestamp").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
