package models

import (
	"time"

	"github.com/google/uuid"
)

type ScanStatus string

const (
	ScanStatusQueued    ScanStatus = "queued"
	ScanStatusRunning   ScanStatus = "running"
	ScanStatusCompleted ScanStatus = "completed"
	ScanStatusFailed    ScanStatus = "failed"
)

type Scan struct {
	Model
	CustomerID uuid.UUID `json:"customerId" gorm:"type:uuid;not null;index"`
	Customer   Customer  `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE;"`

	ScanName string     `json:"scanName" gorm:"type:text;not null"`
	ScanType string     `json:"scanType" gorm:"type:text"`
	Status   ScanStatus `json:"status" gorm:"type:text;not null;default:'queued'"`

	// 0-100
	Progress    int        `json:"progress" gorm:"default:0"`
	StartedAt   *time.Time `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"`

	TargetsCount         int `json:"targetsCount" gorm:"default:0"`
	VulnerabilitiesFound int `json:"vulnerabilitiesFound" gorm:"default:0"`

	// descriptive only - the node registry is authoritative
	NodeName     string `json:"nodeName" gorm:"type:text"`
	NodeLocation string `json:"nodeLocation" gorm:"type:text"`
	NodeIP       string `json:"nodeIp" gorm:"type:text"`
}

func (s Scan) TableName() string {
	return "scans"
}

// IsLongRunning reports whether the scan has been running for more than
// the given duration without completing.
func (s Scan) IsLongRunning(now time.Time, threshold time.Duration) bool {
	if s.Status != ScanStatusRunning || s.StartedAt == nil {
		return false
	}
	return now.Sub(*s.StartedAt) > threshold
}
