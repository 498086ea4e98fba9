package models

type VulnerabilityTemplate struct {
	Model
	TemplateName      string   `json:"templateName" gorm:"type:text;not null"`
	VulnerabilityType string   `json:"vulnerabilityType" gorm:"type:text;not null"`
	Severity          Severity `json:"severity" gorm:"type:text;not null;default:'info'"`
	DetectionMethod   string   `json:"detectionMethod" gorm:"type:text"`
	ScanTargets       []string `json:"scanTargets" gorm:"type:jsonb;serializer:json;default:'[]'"`

	DetectionPattern string `json:"detectionPattern" gorm:"type:text"`
	TestPayload      string `json:"testPayload" gorm:"type:text"`
	Description      string `json:"description" gorm:"type:text"`

	Enabled       bool     `json:"enabled" gorm:"default:true;not null"`
	Tags          []string `json:"tags" gorm:"type:jsonb;serializer:json;default:'[]'"`
	CVEReferences []string `json:"cveReferences" gorm:"type:jsonb;serializer:json;default:'[]'"`
}

func (t VulnerabilityTemplate) TableName() string {
	return "vulnerability_templates"
}
