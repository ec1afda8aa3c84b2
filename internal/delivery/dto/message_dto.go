package dto

import "time"

type CreateMessageRequest struct {
	SenderID    int64  `json:"sender_id" validate:"required,gt=0"`
	RecipientID int64  `json:"recipient_id" validate:"required,gt=0"`
	Content     string `json:"content" validate:"required"`
}

type MessageResponse struct {
	ID          int64     `json:"id"`
	SenderID    int64     `json:"sender_id"`
	RecipientID int64     `json:"recipient_id"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int               `json:"total"`
}
