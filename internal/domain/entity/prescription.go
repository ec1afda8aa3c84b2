package entity

import "time"

type Prescription struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      int64     `gorm:"not null;index" json:"patient_id"`
	Medication     string    `gorm:"type:varchar(255);not null" json:"medication"`
	Dosage         string    `gorm:"type:varchar(255);not null" json:"dosage"`
	Instructions   string    `gorm:"type:text" json:"instructions"`
	DatePrescribed time.Time `gorm:"not null" json:"date_prescribed"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
