package handler

import (
	"encoding/json"
	"net/http"

	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/usecase"
	"practice-management-api/pkg/response"
	"practice-management-api/pkg/validator"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *MedicalRecordHandler) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrMedicalRecordPatientMissing {
			response.BadRequest(w, "Referenced patient does not exist")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusCreated, record)
}

func (h *MedicalRecordHandler) GetMedicalRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid medical record ID")
		return
	}

	record, err := h.recordUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrMedicalRecordNotFound {
			response.NotFound(w, "Medical record not found")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, record)
}

// ListPatientMedicalRecords serves GET /api/users/{id}/medical_records.
func (h *MedicalRecordHandler) ListPatientMedicalRecords(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	records, err := h.recordUsecase.ListByPatient(r.Context(), id)
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
