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
	"testing"

	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/utils"
	"github.com/stretchr/testify/assert"
)

func TestCustomerCreateRequestToModel(t *testing.T) {
	t.Run("should slugify the company name", func(t *testing.T) {
		customer := CustomerCreateRequestToModel(dtos.CustomerCreateRequest{
			CompanyName: "Täst Corp GmbH",
		})

		assert.Equal(t, "tast-corp-gmbh", customer.Slug)
	})

	t.Run("should default status and plan when omitted", func(t *testing.T) {
		customer := CustomerCreateRequestToModel(dtos.CustomerCreateRequest{
			CompanyName: "Acme",
		})

		assert.Equal(t, models.CustomerStatusActive, customer.Status)
		assert.Equal(t, models.PlanProfessional, customer.Plan)
		assert.NotNil(t, customer.Licenses)
		assert.Empty(t, customer.Tags)
	})

	t.Run("should parse date strings", func(t *testing.T) {
		customer := CustomerCreateRequestToModel(dtos.CustomerCreateRequest{
			CompanyName: "Acme",
			RenewalDate: utils.Ptr("2026-03-01"),
		})

		assert.NotNil(t, customer.RenewalDate)
		assert.Equal(t, "2026-03-01", customer.RenewalDate.Format("2006-01-02"))
	})

	t.Run("should treat a malformed date as absent", func(t *testing.T) {
		customer := CustomerCreateRequestToModel(dtos.CustomerCreateRequest{
			CompanyName: "Acme",
			RenewalDate: utils.Ptr("03/01/2026"),
		})

		assert.Nil(t, customer.RenewalDate)
	})
}

func TestApplyCustomerPatchRequestToModel(t *testing.T) {
	t.Run("should not report an update for an empty patch", func(t *testing.T) {
		customer := models.Customer{CompanyName: "Acme", Slug: "acme"}

		updated := ApplyCustomerPatchRequestToModel(dtos.CustomerPatchRequest{}, &customer)

		assert.False(t, updated)
		assert.Equal(t, "Acme", customer.CompanyName)
	})

	t.Run("should re-slug when the name changes", func(t *testing.T) {
		customer := models.Customer{CompanyName: "Acme", Slug: "acme"}

		updated := ApplyCustomerPatchRequestToModel(dtos.CustomerPatchRequest{
			CompanyName: utils.Ptr("New Name Inc"),
		}, &customer)

		assert.True(t, updated)
		assert.Equal(t, "new-name-inc", customer.Slug)
	})

	t.Run("should flag a missed payment", func(t *testing.T) {
		customer := models.Customer{}

		ApplyCustomerPatchRequestToModel(dtos.CustomerPatchRequest{
			MissedPayment:       utils.Ptr(true),
			MissedPaymentAmount: utils.Ptr(2500.),
			PaymentNotes:        utils.Ptr("invoice 4711 overdue"),
		}, &customer)

		assert.True(t, customer.MissedPayment)
		assert.Equal(t, 2500., customer.MissedPaymentAmount)
		assert.Equal(t, "invoice 4711 overdue", customer.PaymentNotes)
	})
}

func TestCustomerToDTO(t *testing.T) {
	t.Run("should derive the resolution rate", func(t *testing.T) {
		dto := CustomerToDTO(models.Customer{
			VulnerabilitiesCount:    40,
			ResolvedVulnerabilities: 10,
		})

		assert.Equal(t, 25, dto.ResolutionRate)
	})

	t.Run("should report zero resolution rate without vulnerabilities", func(t *testing.T) {
		dto := CustomerToDTO(models.Customer{})

		assert.Equal(t, 0, dto.ResolutionRate)
	})

	t.Run("should never serialize nil tag slices", func(t *testing.T) {
		dto := CustomerToDTO(models.Customer{})

		assert.NotNil(t, dto.Tags)
		assert.NotNil(t, dto.ScanScope)
	})
}
