package entity

import "time"

const (
	ClaimStatusSubmitted = "submitted"
	ClaimStatusApproved  = "approved"
	ClaimStatusDenied    = "denied"
)

type InsuranceClaim struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      int64     `gorm:"not null;index" json:"patient_id"`
	ClaimNumber    string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"claim_number"`
	Status         string    `gorm:"type:varchar(100);not null;default:'submitted'" json:"status"`
	SubmissionDate time.Time `gorm:"not null" json:"submission_date"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (InsuranceClaim) TableName() string {
	return "insurance_claims"
}
