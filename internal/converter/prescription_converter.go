package converter

import (
	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/domain/entity"
)

func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	return &dto.PrescriptionResponse{
		ID:             prescription.ID,
		PatientID:      prescription.PatientID,
		Medication:     prescription.Medication,
		Dosage:         prescription.Dosage,
		Instructions:   prescription.Instructions,
		DatePrescribed: prescription.DatePrescribed,
		CreatedAt:      prescription.CreatedAt,
		UpdatedAt:      prescription.UpdatedAt,
	}
}

func PrescriptionsToListResponse(prescriptions []entity.Prescription) *dto.PrescriptionListResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescriptions[i])
	}
	return &dto.PrescriptionListResponse{
		Prescriptions: responses,
		Total:         len(responses),
	}
}
