package dto

import "time"

type CreateBillingRequest struct {
	PatientID int64  `json:"patient_id" validate:"required,gt=0"`
	Service   string `json:"service" validate:"required,max=255"`
	// Amount is in minor currency units.
	Amount               int64  `json:"amount" validate:"gte=0"`
	InsuranceClaimStatus string `json:"insurance_claim_status" validate:"omitempty,max=100"`
	InsuranceClaimID     *int64 `json:"insurance_claim_id" validate:"omitempty,gt=0"`
}

type BillingResponse struct {
	ID                   int64     `json:"id"`
	PatientID            int64     `json:"patient_id"`
	Service              string    `json:"service"`
	Amount               int64     `json:"amount"`
	Date                 time.Time `json:"date"`
	InsuranceClaimStatus string    `json:"insurance_claim_status"`
	InsuranceClaimID     *int64    `json:"insurance_claim_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type BillingListResponse struct {
	Billing []BillingResponse `json:"billing"`
	Total   int               `json:"total"`
}
