package models

import (
	"time"

	"github.com/l3montree-dev/vulify/database"
)

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
	CustomerStatusTrial    CustomerStatus = "trial"
)

type CustomerPlan string

const (
	PlanEssential    CustomerPlan = "Essential"
	PlanStarter      CustomerPlan = "Starter"
	PlanProfessional CustomerPlan = "Professional"
	PlanPro          CustomerPlan = "Pro"
	PlanEnterprise   CustomerPlan = "Enterprise"
)

type Customer struct {
	Model
	CompanyName string         `json:"companyName" gorm:"type:text;not null"`
	Slug        string         `json:"slug" gorm:"type:text;unique;not null;index"`
	Status      CustomerStatus `json:"status" gorm:"type:text;not null;default:'active'"`
	Plan        CustomerPlan   `json:"plan" gorm:"type:text;not null;default:'Professional'"`
	Tags        []string       `json:"tags" gorm:"type:jsonb;serializer:json;default:'[]'"`

	ContractValue     float64    `json:"contractValue" gorm:"default:0"`
	AmountSpentToDate float64    `json:"amountSpentToDate" gorm:"default:0"`
	RenewalDate       *time.Time `json:"renewalDate" gorm:"type:date"`

	IsTrial      bool       `json:"isTrial" gorm:"default:false"`
	TrialEndDate *time.Time `json:"trialEndDate" gorm:"type:date"`

	// license key to purchased seat count
	Licenses database.JSONB `json:"licenses" gorm:"type:jsonb;default:'{}'"`

	VulnerabilitiesCount    int `json:"vulnerabilitiesCount" gorm:"default:0"`
	CriticalVulnerabilities int `json:"criticalVulnerabilities" gorm:"default:0"`
	ResolvedVulnerabilities int `json:"resolvedVulnerabilities" gorm:"default:0"`

	MissedPayment       bool       `json:"missedPayment" gorm:"default:false"`
	MissedPaymentAmount float64    `json:"missedPaymentAmount" gorm:"default:0"`
	MissedPaymentDate   *time.Time `json:"missedPaymentDate" gorm:"type:date"`
	PaymentNotes        string     `json:"paymentNotes" gorm:"type:text"`

	MainContactName     string `json:"mainContactName" gorm:"type:text"`
	MainContactEmail    string `json:"mainContactEmail" gorm:"type:text"`
	MainContactJobTitle string `json:"mainContactJobTitle" gorm:"type:text"`

	RegistrationGoal string   `json:"registrationGoal" gorm:"type:text"`
	ScanScope        []string `json:"scanScope" gorm:"type:jsonb;serializer:json;default:'[]'"`
}

func (c Customer) TableName() string {
	return "customers"
}

// Normalize clamps counters so that the resolved count never exceeds the
// total. The entity store never enforced this, the repository boundary does.
func (c *Customer) Normalize() {
	if c.VulnerabilitiesCount < 0 {
		c.VulnerabilitiesCount = 0
	}
	if c.CriticalVulnerabilities < 0 {
		c.CriticalVulnerabilities = 0
	}
	if c.ResolvedVulnerabilities < 0 {
		c.ResolvedVulnerabilities = 0
	}
	if c.ResolvedVulnerabilities > c.VulnerabilitiesCount {
		c.ResolvedVulnerabilities = c.VulnerabilitiesCount
	}
}
