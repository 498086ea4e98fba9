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

package transformer

import (
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/vulify/database"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/insights"
	"github.com/l3montree-dev/vulify/utils"
)

func CustomerCreateRequestToModel(c dtos.CustomerCreateRequest) models.Customer {
	customer := models.Customer{
		CompanyName: c.CompanyName,
		Slug:        slug.Make(c.CompanyName),
		Status:      models.CustomerStatusActive,
		Plan:        models.PlanProfessional,
		Tags:        utils.OrEmpty(c.Tags),

		ContractValue:     c.ContractValue,
		AmountSpentToDate: c.AmountSpentToDate,
		RenewalDate:       parseDate(c.RenewalDate),

		IsTrial:      c.IsTrial,
		TrialEndDate: parseDate(c.TrialEndDate),

		Licenses: database.JSONB(c.Licenses),

		MainContactName:     c.MainContactName,
		MainContactEmail:    c.MainContactEmail,
		MainContactJobTitle: c.MainContactJobTitle,

		RegistrationGoal: c.RegistrationGoal,
		ScanScope:        utils.OrEmpty(c.ScanScope),
	}

	if c.Status != "" {
		customer.Status = models.CustomerStatus(c.Status)
	}
	if c.Plan != "" {
		customer.Plan = models.CustomerPlan(c.Plan)
	}
	if customer.Licenses == nil {
		customer.Licenses = database.JSONB{}
	}

	return customer
}

func ApplyCustomerPatchRequestToModel(p dtos.CustomerPatchRequest, customer *models.Customer) bool {
	updated := false

	if p.CompanyName != nil {
		updated = true
		customer.CompanyName = *p.CompanyName
		customer.Slug = slug.Make(*p.CompanyName)
	}

	if p.Status != nil {
		updated = true
		customer.Status = models.CustomerStatus(*p.Status)
	}

	if p.Tags != nil {
		updated = true
		customer.Tags = *p.Tags
	}

	if p.ContractValue != nil {
		updated = true
		customer.ContractValue = *p.ContractValue
	}

	if p.AmountSpentToDate != nil {
		updated = true
		customer.AmountSpentToDate = *p.AmountSpentToDate
	}

	if p.RenewalDate != nil {
		updated = true
		customer.RenewalDate = parseDate(p.RenewalDate)
	}

	if p.VulnerabilitiesCount != nil {
		updated = true
		customer.VulnerabilitiesCount = *p.VulnerabilitiesCount
	}

	if p.CriticalVulnerabilities != nil {
		updated = true
		customer.CriticalVulnerabilities = *p.CriticalVulnerabilities
	}

	if p.ResolvedVulnerabilities != nil {
		updated = true
		customer.ResolvedVulnerabilities = *p.ResolvedVulnerabilities
	}

	if p.MissedPayment != nil {
		updated = true
		customer.MissedPayment = *p.MissedPayment
	}

	if p.MissedPaymentAmount != nil {
		updated = true
		customer.MissedPaymentAmount = *p.MissedPaymentAmount
	}

	if p.MissedPaymentDate != nil {
		updated = true
		customer.MissedPaymentDate = parseDate(p.MissedPaymentDate)
	}

	if p.PaymentNotes != nil {
		updated = true
		customer.PaymentNotes = *p.PaymentNotes
	}

	if p.MainContactName != nil {
		updated = true
		customer.MainContactName = *p.MainContactName
	}

	if p.MainContactEmail != nil {
		updated = true
		customer.MainContactEmail = *p.MainContactEmail
	}

	if p.MainContactJobTitle != nil {
		updated = true
		customer.MainContactJobTitle = *p.MainContactJobTitle
	}

	if p.RegistrationGoal != nil {
		updated = true
		customer.RegistrationGoal = *p.RegistrationGoal
	}

	if p.ScanScope != nil {
		updated = true
		customer.ScanScope = *p.ScanScope
	}

	return updated
}

func CustomerToDTO(c models.Customer) dtos.CustomerDTO {
	return dtos.CustomerDTO{
		ID:          c.ID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		CompanyName: c.CompanyName,
		Slug:        c.Slug,
		Status:      string(c.Status),
		Plan:        string(c.Plan),
		Tags:        utils.OrEmpty(c.Tags),

		ContractValue:     c.ContractValue,
		AmountSpentToDate: c.AmountSpentToDate,
		RenewalDate:       c.RenewalDate,

		IsTrial:      c.IsTrial,
		TrialEndDate: c.TrialEndDate,

		Licenses: map[string]any(c.Licenses),

		VulnerabilitiesCount:    c.VulnerabilitiesCount,
		CriticalVulnerabilities: c.CriticalVulnerabilities,
		ResolvedVulnerabilities: c.ResolvedVulnerabilities,
		ResolutionRate:          insights.Percent(c.ResolvedVulnerabilities, c.VulnerabilitiesCount),

		MissedPayment:       c.MissedPayment,
		MissedPaymentAmount: c.MissedPaymentAmount,
		MissedPaymentDate:   c.MissedPaymentDate,
		PaymentNotes:        c.PaymentNotes,

		MainContactName:     c.MainContactName,
		MainContactEmail:    c.MainContactEmail,
		MainContactJobTitle: c.MainContactJobTitle,

		RegistrationGoal: c.RegistrationGoal,
		ScanScope:        utils.OrEmpty(c.ScanScope),
	}
}

func CustomersToDTOs(customers []models.Customer) []dtos.CustomerDTO {
	return utils.Map(customers, CustomerToDTO)
}
