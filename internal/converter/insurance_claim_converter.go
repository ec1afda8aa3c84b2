package converter

import (
	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/domain/entity"
)

func InsuranceClaimToResponse(claim *entity.InsuranceClaim) *dto.InsuranceClaimResponse {
	if claim == nil {
		return nil
	}

	return &dto.InsuranceClaimResponse{
		ID:             claim.ID,
		PatientID:      claim.PatientID,
		ClaimNumber:    claim.ClaimNumber,
		Status:         claim.Status,
		SubmissionDate: claim.SubmissionDate,
		CreatedAt:      claim.CreatedAt,
		UpdatedAt:      claim.UpdatedAt,
	}
}

func InsuranceClaimsToListResponse(claims []entity.InsuranceClaim) *dto.InsuranceClaimListResponse {
	responses := make([]dto.InsuranceClaimResponse, len(claims))
	for i := range claims {
		responses[i] = *InsuranceClaimToResponse(&claims[i])
	}
	return &dto.InsuranceClaimListResponse{
		InsuranceClaims: responses,
		Total:           len(responses),
	}
}
