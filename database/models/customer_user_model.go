package models

import (
	"time"

	"github.com/google/uuid"
)

type CustomerUser struct {
	Model
	CustomerID uuid.UUID `json:"customerId" gorm:"type:uuid;not null;index"`
	Customer   Customer  `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE;"`

	Name          string     `json:"name" gorm:"type:text;not null"`
	Email         string     `json:"email" gorm:"type:text;not null"`
	Role          string     `json:"role" gorm:"type:text"`
	IsMainContact bool       `json:"isMainContact" gorm:"default:false"`
	EmailVerified bool       `json:"emailVerified" gorm:"default:false"`
	LastLogin     *time.Time `json:"lastLogin"`
}

func (u CustomerUser) TableName() string {
	return "customer_users"
}
