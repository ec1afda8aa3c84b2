package handler

import (
	"encoding/json"
	"net/http"

	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/usecase"
	"practice-management-api/pkg/response"
	"practice-management-api/pkg/validator"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

func (h *BillingHandler) CreateBilling(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBillingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	billing, err := h.billingUsecase.Create(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrBillingReferenceMissing {
			response.BadRequest(w, "Referenced patient or insurance claim does not exist")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusCreated, billing)
}

func (h *BillingHandler) GetBilling(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid billing ID")
		return
	}

	billing, err := h.billingUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrBillingNotFound {
			response.NotFound(w, "Billing record not found")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, billing)
}

// ListPatientBilling serves GET /api/users/{id}/billing.
func (h *BillingHandler) ListPatientBilling(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	records, err := h.billingUsecase.ListByPatient(r.Context(), id)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, records)
}
