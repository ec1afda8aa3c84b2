package dto

import "time"

type CreateMedicalRecordRequest struct {
	PatientID   int64  `json:"patient_id" validate:"required,gt=0"`
	Document    string `json:"document" validate:"required"`
	Description string `json:"description" validate:"omitempty"`
}

type MedicalRecordResponse struct {
	ID          int64     `json:"id"`
	PatientID   int64     `json:"patient_id"`
	Document    string    `json:"document"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MedicalRecordListResponse struct {
	MedicalRecords []MedicalRecordResponse `json:"medical_records"`
	Total          int                     `json:"total"`
}
