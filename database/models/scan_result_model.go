package models

import (
	"github.com/google/uuid"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

type ScanResultStatus string

const (
	ScanResultStatusNew           ScanResultStatus = "new"
	ScanResultStatusRemediated    ScanResultStatus = "remediated"
	ScanResultStatusFalsePositive ScanResultStatus = "false_positive"
)

type ScanResult struct {
	Model
	ScanID uuid.UUID `json:"scanId" gorm:"type:uuid;not null;index"`
	Scan   Scan      `json:"-" gorm:"foreignKey:ScanID;constraint:OnDelete:CASCADE;"`

	VulnerabilityName string   `json:"vulnerabilityName" gorm:"type:text;not null"`
	VulnerabilityCode string   `json:"vulnerabilityCode" gorm:"type:text"`
	Severity          Severity `json:"severity" gorm:"type:text;not null;default:'info'"`

	Target string `json:"target" gorm:"type:text"`
	Port   string `json:"port" gorm:"type:text"`

	Description    string  `json:"description" gorm:"type:text"`
	Evidence       string  `json:"evidence" gorm:"type:text"`
	Recommendation string  `json:"recommendation" gorm:"type:text"`
	CVSSScore      float64 `json:"cvssScore" gorm:"default:0"`

	Status ScanResultStatus `json:"status" gorm:"type:text;not null;default:'new'"`
}

func (r ScanResult) TableName() string {
	return "scan_results"
}
