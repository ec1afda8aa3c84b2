package dto

import "time"

type CreatePrescriptionRequest struct {
	PatientID    int64     `json:"patient_id" validate:"required,gt=0"`
	Medication   string    `json:"medication" validate:"required,max=255"`
	Dosage       string    `json:"dosage" validate:"required,max=255"`
	Instructions string    `json:"instructions" validate:"omitempty"`
	// DatePrescribed defaults to the server clock when omitted.
	DatePrescribed time.Time `json:"date_prescribed" validate:"omitempty"`
}

type PrescriptionResponse struct {
	ID             int64     `json:"id"`
	PatientID      int64     `json:"patient_id"`
	Medication     string    `json:"medication"`
	Dosage         string    `json:"dosage"`
	Instructions   string    `json:"instructions"`
	DatePrescribed time.Time `json:"date_prescribed"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
