package models

import (
	"time"
)

// Message is one entry in the directed message log between two users.
// Conversations are derived by grouping on the counterpart user id.
type Message struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SenderID    uint      `json:"sender_id"`
	Sender      User      `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	RecipientID uint      `json:"recipient_id"`
	Recipient   User      `json:"recipient,omitempty" gorm:"foreignKey:RecipientID"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}
