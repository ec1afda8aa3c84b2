package entity

import "time"

// Message is immutable once created; there is no update timestamp.
type Message struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID    int64     `gorm:"not null;index" json:"sender_id"`
	RecipientID int64     `gorm:"not null;index" json:"recipient_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Timestamp   time.Time `gorm:"autoCreateTime" json:"timestamp"`

	// Relationships
	Sender    *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Recipient *User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}
