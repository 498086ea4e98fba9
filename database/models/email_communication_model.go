package models

import (
	"time"

	"github.com/google/uuid"
)

type EmailStatus string

const (
	EmailStatusSent      EmailStatus = "sent"
	EmailStatusDelivered EmailStatus = "delivered"
	EmailStatusOpened    EmailStatus = "opened"
	EmailStatusBounced   EmailStatus = "bounced"
)

type EmailCommunication struct {
	Model
	CustomerID uuid.UUID `json:"customerId" gorm:"type:uuid;not null;index"`
	Customer   Customer  `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE;"`

	RecipientEmail string      `json:"recipientEmail" gorm:"type:text;not null"`
	Subject        string      `json:"subject" gorm:"type:text;not null"`
	Body           string      `json:"body" gorm:"type:text"`
	SentDate       time.Time   `json:"sentDate" gorm:"not null"`
	Status         EmailStatus `json:"status" gorm:"type:text;not null;default:'sent'"`
	EmailType      string      `json:"emailType" gorm:"type:text"`
}

func (e EmailCommunication) TableName() string {
	return "email_communications"
}
