package dto

import "time"

type CreateAppointmentRequest struct {
	PatientID   int64     `json:"patient_id" validate:"required,gt=0"`
	ProviderID  int64     `json:"provider_id" validate:"required,gt=0"`
	DateTime    time.Time `json:"date_time" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Status      string    `json:"status" validate:"omitempty,max=50"`
}

type UpdateAppointmentRequest struct {
	ProviderID  int64     `json:"provider_id" validate:"omitempty,gt=0"`
	DateTime    time.Time `json:"date_time" validate:"omitempty"`
	Description string    `json:"description" validate:"omitempty"`
	Status      string    `json:"status" validate:"omitempty,max=50"`
}

type AppointmentResponse struct {
	ID          int64     `json:"id"`
	PatientID   int64     `json:"patient_id"`
	ProviderID  int64     `json:"provider_id"`
	DateTime    time.Time `json:"date_time"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
