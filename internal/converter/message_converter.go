package converter

import (
	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/domain/entity"
)

func MessageToResponse(message *entity.Message) *dto.MessageResponse {
	if message == nil {
		return nil
	}

	return &dto.MessageResponse{
		ID:          message.ID,
		SenderID:    message.SenderID,
		RecipientID: message.RecipientID,
		Content:     message.Content,
		Timestamp:   message.Timestamp,
	}
}

func MessagesToListResponse(messages []entity.Message) *dto.MessageListResponse {
	responses := make([]dto.MessageResponse, len(messages))
	for i := range messages {
		responses[i] = *MessageToResponse(&messages[i])
	}
	return &dto.MessageListResponse{
		Messages: responses,
		Total:    len(responses),
	}
}
