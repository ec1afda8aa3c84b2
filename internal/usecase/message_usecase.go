package usecase

import (
	"context"
	"errors"

	"practice-management-api/internal/converter"
	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/domain/entity"
	"practice-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMessageNotFound           = errors.New("message not found")
	ErrMessageParticipantMissing = errors.New("referenced sender or recipient does not exist")
)

// MessageUsecase offers no update or delete: messages are immutable.
type MessageUsecase interface {
	Create(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	Get(ctx context.Context, id int64) (*dto.MessageResponse, error)
	ListBySender(ctx context.Context, senderID int64) (*dto.MessageListResponse, error)
	ListByRecipient(ctx context.Context, recipientID int64) (*dto.MessageListResponse, error)
}

type messageUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func NewMessageUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
) MessageUsecase {
	return &messageUsecase{
		db:          db,
		log:         log,
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

func (u *messageUsecase) Create(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	message := &entity.Message{
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		Content:     req.Content,
	}
	if err := u.messageRepo.Create(ctx, tx, message); err != nil {
		u.log.Warnf("Failed to create message: %+v", err)
		if isForeignKeyError(err) {
			return nil, ErrMessageParticipantMissing
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MessageToResponse(message), nil
}

func (u *messageUsecase) Get(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	message, err := u.messageRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find message: %+v", err)
		return nil, err
	}
	if message == nil {
		return nil, ErrMessageNotFound
	}

	return converter.MessageToResponse(message), nil
}

func (u *messageUsecase) ListBySender(ctx context.Context, senderID int64) (*dto.MessageListResponse, error) {
	sender, err := u.userRepo.FindByID(ctx, u.db, senderID)
	if err != nil {
		u.log.Warnf("Failed to find sender: %+v", err)
		return nil, err
	}
	if sender == nil {
		return nil, ErrUserNotFound
	}

	messages, err := u.messageRepo.FindBySenderID(ctx, u.db, senderID)
	if err != nil {
		u.log.Warnf("Failed to list sent messages: %+v", err)
		return nil, err
	}

	return converter.MessagesToListResponse(messages), nil
}

func (u *messageUsecase) ListByRecipient(ctx context.Context, recipientID int64) (*dto.MessageListResponse, error) {
	recipient, err := u.userRepo.FindByID(ctx, u.db, recipientID)
	if err != nil {
		u.log.Warnf("Failed to find recipient: %+v", err)
		return nil, err
	}
	if recipient == nil {
		return nil, ErrUserNotFound
	}

	messages, err := u.messageRepo.FindByRecipientID(ctx, u.db, recipientID)
	if err != nil {
		u.log.Warnf("Failed to list received messages: %+v", err)
		return nil, err
	}

	return converter.MessagesToListResponse(messages), nil
}
