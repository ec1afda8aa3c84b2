package entity

import "time"

// User represents a patient or doctor account. Password always holds an
// argon2id hash, never the submitted value.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	IsDoctor  bool      `gorm:"not null;default:false" json:"is_doctor"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments     []Appointment    `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"appointments,omitempty"`
	SentMessages     []Message        `gorm:"foreignKey:SenderID;constraint:OnDelete:RESTRICT" json:"sent_messages,omitempty"`
	ReceivedMessages []Message        `gorm:"foreignKey:RecipientID;constraint:OnDelete:RESTRICT" json:"received_messages,omitempty"`
	MedicalRecords   []MedicalRecord  `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"medical_records,omitempty"`
	Prescriptions    []Prescription   `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"prescriptions,omitempty"`
	Billing          []Billing        `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"billing,omitempty"`
	InsuranceClaims  []InsuranceClaim `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"insurance_claims,omitempty"`
}

func (User) TableName() string {
	return "users"
}
