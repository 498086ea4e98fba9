package models

import (
	"time"

	"github.com/l3montree-dev/vulify/database"
)

// User is an administrator account of the dashboard itself, not a
// customer seat (see CustomerUser).
type User struct {
	Model
	Email    string `json:"email" gorm:"type:text;unique;not null;index"`
	FullName string `json:"fullName" gorm:"type:text"`
	Role     string `json:"role" gorm:"type:text;default:'admin'"`

	Department string `json:"department" gorm:"type:text"`
	Phone      string `json:"phone" gorm:"type:text"`

	NotificationPreferences database.JSONB `json:"notificationPreferences" gorm:"type:jsonb;default:'{}'"`
	LastPasswordReset       *time.Time     `json:"lastPasswordReset"`
}

func (u User) TableName() string {
	return "users"
}
