package entity

import "time"

// Billing records a charge against a patient. Amount is in minor currency
// units and never negative.
type Billing struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID            int64     `gorm:"not null;index" json:"patient_id"`
	Service              string    `gorm:"type:varchar(255);not null" json:"service"`
	Amount               int64     `gorm:"not null;check:amount >= 0" json:"amount"`
	Date                 time.Time `gorm:"not null" json:"date"`
	InsuranceClaimStatus string    `gorm:"type:varchar(100)" json:"insurance_claim_status"`
	InsuranceClaimID     *int64    `gorm:"index" json:"insurance_claim_id,omitempty"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient        *User           `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	InsuranceClaim *InsuranceClaim `gorm:"foreignKey:InsuranceClaimID" json:"insurance_claim,omitempty"`
}

func (Billing) TableName() string {
	return "billing"
}
