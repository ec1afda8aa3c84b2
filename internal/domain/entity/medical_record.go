package entity

import "time"

// MedicalRecord stores free-text clinical documents per patient.
type MedicalRecord struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   int64     `gorm:"not null;index" json:"patient_id"`
	Document    string    `gorm:"type:text;not null" json:"document"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
