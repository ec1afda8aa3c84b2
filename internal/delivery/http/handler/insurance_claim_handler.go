package handler

import (
	"encoding/json"
	"net/http"

	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/usecase"
	"practice-management-api/pkg/response"
	"practice-management-api/pkg/validator"
)

type InsuranceClaimHandler struct {
	claimUsecase usecase.InsuranceClaimUsecase
	validator    *validator.CustomValidator
}

func NewInsuranceClaimHandler(claimUsecase usecase.InsuranceClaimUsecase, validator *validator.CustomValidator) *InsuranceClaimHandler {
	return &InsuranceClaimHandler{
		claimUsecase: claimUsecase,
		validator:    validator,
	}
}

func (h *InsuranceClaimHandler) CreateInsuranceClaim(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInsuranceClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	claim, err := h.claimUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrClaimNumberTaken:
			response.Conflict(w, "Claim number already exists")
		case usecase.ErrInsuranceClaimPatientMissing:
			response.BadRequest(w, "Referenced patient does not exist")
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusCreated, claim)
}

func (h *InsuranceClaimHandler) GetInsuranceClaim(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid insurance claim ID")
		return
	}

	claim, err := h.claimUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrInsuranceClaimNotFound {
			response.NotFound(w, "Insurance claim not found")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, claim)
}

// ListPatientInsuranceClaims serves GET /api/users/{id}/insurance_claims.
func (h *InsuranceClaimHandler) ListPatientInsuranceClaims(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	claims, err := h.claimUsecase.ListByPatient(r.Context(), id)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, claims)
}
