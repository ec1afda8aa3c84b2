package entity

import "time"

// Appointment status values. Status is free text; these are the values the
// API writes itself.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment links a patient to a provider at a point in time.
type Appointment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   int64     `gorm:"not null;index" json:"patient_id"`
	ProviderID  int64     `gorm:"not null" json:"provider_id"`
	DateTime    time.Time `gorm:"not null" json:"date_time"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
