package models

import (
	"time"

	"github.com/google/uuid"
)

type RemediationSource string

const (
	RemediationSourceAIGenerated RemediationSource = "ai_generated"
	RemediationSourceTeamEdited  RemediationSource = "team_edited"
)

type VulnerabilityRemediation struct {
	Model
	VulnerabilityName string   `json:"vulnerabilityName" gorm:"type:text;not null"`
	VulnerabilityCode string   `json:"vulnerabilityCode" gorm:"type:text"`
	Category          string   `json:"category" gorm:"type:text"`
	Severity          Severity `json:"severity" gorm:"type:text;not null;default:'info'"`
	Description       string   `json:"description" gorm:"type:text"`

	Steps []RemediationStep `json:"steps" gorm:"foreignKey:RemediationID;constraint:OnDelete:CASCADE;"`

	ThumbsUp   int `json:"thumbsUp" gorm:"default:0"`
	ThumbsDown int `json:"thumbsDown" gorm:"default:0"`

	Source       RemediationSource `json:"source" gorm:"type:text;not null;default:'ai_generated'"`
	LastModified time.Time         `json:"lastModified"`
}

func (v VulnerabilityRemediation) TableName() string {
	return "vulnerability_remediations"
}

type RemediationStep struct {
	Model
	RemediationID uuid.UUID `json:"remediationId" gorm:"type:uuid;not null;index"`

	StepNumber  int    `json:"stepNumber" gorm:"not null"`
	Title       string `json:"title" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text"`
}

func (s RemediationStep) TableName() string {
	return "remediation_steps"
}
