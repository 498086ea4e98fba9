package models

import (
	"github.com/l3montree-dev/vulify/database"
)

type AuditEventType string

const (
	EventTypeFailedLogin        AuditEventType = "failed_login"
	EventTypeSuspiciousRequest  AuditEventType = "suspicious_request"
	EventTypeUnauthorizedAccess AuditEventType = "unauthorized_access"
	EventTypeDataModification   AuditEventType = "data_modification"
	EventTypePermissionChange   AuditEventType = "permission_change"
)

type AuditLogStatus string

const (
	AuditLogStatusSuccess AuditLogStatus = "success"
	AuditLogStatusFailed  AuditLogStatus = "failed"
	AuditLogStatusBlocked AuditLogStatus = "blocked"
)

// AuditLog rows are append only. There is intentionally no update or
// delete path for them anywhere in the codebase.
type AuditLog struct {
	Model
	EventType AuditEventType `json:"eventType" gorm:"type:text;not null;index"`
	Severity  Severity       `json:"severity" gorm:"type:text;not null;default:'info'"`

	UserEmail string `json:"userEmail" gorm:"type:text"`
	IPAddress string `json:"ipAddress" gorm:"type:text"`
	Location  string `json:"location" gorm:"type:text"`
	UserAgent string `json:"userAgent" gorm:"type:text"`

	Resource    string         `json:"resource" gorm:"type:text"`
	Action      string         `json:"action" gorm:"type:text"`
	Status      AuditLogStatus `json:"status" gorm:"type:text"`
	Description string         `json:"description" gorm:"type:text"`
	Metadata    database.JSONB `json:"metadata" gorm:"type:jsonb;default:'{}'"`
}

func (a AuditLog) TableName() string {
	return "audit_logs"
}
