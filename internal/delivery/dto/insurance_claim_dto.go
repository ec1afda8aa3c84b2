package dto

import "time"

type CreateInsuranceClaimRequest struct {
	PatientID   int64  `json:"patient_id" validate:"required,gt=0"`
	ClaimNumber string `json:"claim_number" validate:"required,max=100"`
	Status      string `json:"status" validate:"omitempty,max=100"`
	// SubmissionDate defaults to the server clock when omitted.
	SubmissionDate time.Time `json:"submission_date" validate:"omitempty"`
}

type InsuranceClaimResponse struct {
	ID             int64     `json:"id"`
	PatientID      int64     `json:"patient_id"`
	ClaimNumber    string    `json:"claim_number"`
	Status         string    `json:"status"`
	SubmissionDate time.Time `json:"submission_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type InsuranceClaimListResponse struct {
	InsuranceClaims []InsuranceClaimResponse `json:"insurance_claims"`
	Total           int                      `json:"total"`
}
