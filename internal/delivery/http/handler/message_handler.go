package handler

import (
	"encoding/json"
	"net/http"

	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/usecase"
	"practice-management-api/pkg/response"
	"practice-management-api/pkg/validator"
)

type MessageHandler struct {
	messageUsecase usecase.MessageUsecase
	validator      *validator.CustomValidator
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, validator *validator.CustomValidator) *MessageHandler {
	return &MessageHandler{
		messageUsecase: messageUsecase,
		validator:      validator,
	}
}

func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.messageUsecase.Create(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrMessageParticipantMissing {
			response.BadRequest(w, "Referenced sender or recipient does not exist")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusCreated, message)
}

func (h *MessageHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid message ID")
		return
	}

	message, err := h.messageUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrMessageNotFound {
			response.NotFound(w, "Message not found")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, message)
}

// ListSentMessages serves GET /api/users/{id}/messages/sent.
func (h *MessageHandler) ListSentMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	messages, err := h.messageUsecase.ListBySender(r.Context(), id)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, messages)
}

// ListReceivedMessages serves GET /api/users/{id}/messages/received.
func (h *MessageHandler) ListReceivedMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	messages, err := h.messageUsecase.ListByRecipient(r.Context(), id)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, messages)
}
