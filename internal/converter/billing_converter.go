package converter

import (
	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/domain/entity"
)

func BillingToResponse(billing *entity.Billing) *dto.BillingResponse {
	if billing == nil {
		return nil
	}

	return &dto.BillingResponse{
		ID:                   billing.ID,
		PatientID:            billing.PatientID,
		Service:              billing.Service,
		Amount:               billing.Amount,
		Date:                 billing.Date,
		InsuranceClaimStatus: billing.InsuranceClaimStatus,
		InsuranceClaimID:     billing.InsuranceClaimID,
		CreatedAt:            billing.CreatedAt,
		UpdatedAt:            billing.UpdatedAt,
	}
}

func BillingToListResponse(records []entity.Billing) *dto.BillingListResponse {
	responses := make([]dto.BillingResponse, len(records))
	for i := range records {
		responses[i] = *BillingToResponse(&records[i])
	}
	return &dto.BillingListResponse{
		Billing: responses,
		Total:   len(responses),
	}
}
