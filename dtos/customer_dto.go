// Copyright (C) 2025 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type CustomerCreateRequest struct {
	CompanyName string   `json:"companyName" validate:"required"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive trial"`
	Plan        string   `json:"plan" validate:"omitempty,oneof=Essential Starter Professional Pro Enterprise"`
	Tags        []string `json:"tags"`

	ContractValue     float64 `json:"contractValue" validate:"gte=0"`
	AmountSpentToDate float64 `json:"amountSpentToDate" validate:"gte=0"`
	RenewalDate       *string `json:"renewalDate"`

	IsTrial      bool    `json:"isTrial"`
	TrialEndDate *string `json:"trialEndDate"`

	Licenses map[string]any `json:"licenses"`

	MainContactName     string `json:"mainContactName"`
	MainContactEmail    string `json:"mainContactEmail" validate:"omitempty,email"`
	MainContactJobTitle string `json:"mainContactJobTitle"`

	RegistrationGoal string   `json:"registrationGoal"`
	ScanScope        []string `json:"scanScope"`
}

type CustomerPatchRequest struct {
	CompanyName *string   `json:"companyName"`
	Status      *string   `json:"status" validate:"omitempty,oneof=active inactive trial"`
	Tags        *[]string `json:"tags"`

	ContractValue     *float64 `json:"contractValue" validate:"omitempty,gte=0"`
	AmountSpentToDate *float64 `json:"amountSpentToDate" validate:"omitempty,gte=0"`
	RenewalDate       *string  `json:"renewalDate"`

	VulnerabilitiesCount    *int `json:"vulnerabilitiesCount" validate:"omitempty,gte=0"`
	CriticalVulnerabilities *int `json:"criticalVulnerabilities" validate:"omitempty,gte=0"`
	ResolvedVulnerabilities *int `json:"resolvedVulnerabilities" validate:"omitempty,gte=0"`

	MissedPayment       *bool    `json:"missedPayment"`
	MissedPaymentAmount *float64 `json:"missedPaymentAmount" validate:"omitempty,gte=0"`
	MissedPaymentDate   *string  `json:"missedPaymentDate"`
	PaymentNotes        *string  `json:"paymentNotes"`

	MainContactName     *string `json:"mainContactName"`
	MainContactEmail    *string `json:"mainContactEmail" validate:"omitempty,email"`
	MainContactJobTitle *string `json:"mainContactJobTitle"`

	RegistrationGoal *string   `json:"registrationGoal"`
	ScanScope        *[]string `json:"scanScope"`
}

// UpdateLicensesRequest maps a license key to the purchased seat count.
type UpdateLicensesRequest struct {
	Licenses map[string]int `json:"licenses" validate:"required"`
}

type UpdatePlanRequest struct {
	Plan         string  `json:"plan" validate:"required,oneof=Essential Starter Professional Pro Enterprise"`
	IsTrial      bool    `json:"isTrial"`
	TrialEndDate *string `json:"trialEndDate"`
}

type CustomerDTO struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CompanyName string    `json:"companyName"`
	Slug        string    `json:"slug"`
	Status      string    `json:"status"`
	Plan        string    `json:"plan"`
	Tags        []string  `json:"tags"`

	ContractValue     float64    `json:"contractValue"`
	AmountSpentToDate float64    `json:"amountSpentToDate"`
	RenewalDate       *time.Time `json:"renewalDate"`

	IsTrial      bool       `json:"isTrial"`
	TrialEndDate *time.Time `json:"trialEndDate"`

	Licenses map[string]any `json:"licenses"`

	VulnerabilitiesCount    int `json:"vulnerabilitiesCount"`
	CriticalVulnerabilities int `json:"criticalVulnerabilities"`
	ResolvedVulnerabilities int `json:"resolvedVulnerabilities"`
	// derived, never stored
	ResolutionRate int `json:"resolutionRate"`

	MissedPayment       bool       `json:"missedPayment"`
	MissedPaymentAmount float64    `json:"missedPaymentAmount"`
	MissedPaymentDate   *time.Time `json:"missedPaymentDate"`
	PaymentNotes        string     `json:"paymentNotes"`

	MainContactName     string `json:"mainContactName"`
	MainContactEmail    string `json:"mainContactEmail"`
	MainContactJobTitle string `json:"mainContactJobTitle"`

	RegistrationGoal string   `json:"registrationGoal"`
	ScanScope        []string `json:"scanScope"`
}

type CustomerDetailsDTO struct {
	CustomerDTO
	Users  []CustomerUserDTO       `json:"users"`
	Emails []EmailCommunicationDTO `json:"emails"`
	Scans  []ScanDTO               `json:"scans"`
}
