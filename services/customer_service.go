// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"fmt"
	"time"

	"github.com/l3montree-dev/vulify/database"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/database/repositories"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/l3montree-dev/vulify/utils"
	"github.com/labstack/echo/v4"
)

// LicenseKeys are the purchasable scan capabilities. License maps only
// ever carry these keys.
var LicenseKeys = []string{
	"internal_infrastructure_scan",
	"internal_monitoring_assets",
	"external_infrastructure_scan",
	"web_app_scan",
	"cloud_assets",
}

type CustomerService struct {
	customerRepository shared.CustomerRepository
}

func NewCustomerService(customerRepository shared.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepository: customerRepository,
	}
}

func (c *CustomerService) CreateCustomer(customer *models.Customer) error {
	if customer.CompanyName == "" || customer.Slug == "" {
		return echo.NewHTTPError(409, "customers with an empty name or an empty slug are not allowed").WithInternal(fmt.Errorf("customers with an empty name or an empty slug are not allowed"))
	}

	err := c.customerRepository.Create(nil, customer)
	if err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "customer with that name already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create customer").WithInternal(err)
	}

	return nil
}

func (c *CustomerService) UpdateLicenses(customer *models.Customer, licenses map[string]int) error {
	for key, count := range licenses {
		if !utils.Contains(LicenseKeys, key) {
			return echo.NewHTTPError(400, fmt.Sprintf("unknown license key: %s", key))
		}
		if count < 0 {
			return echo.NewHTTPError(400, fmt.Sprintf("license count for %s must not be negative", key))
		}
	}

	updated := database.JSONB{}
	for key, count := range licenses {
		updated[key] = count
	}
	customer.Licenses = updated

	if err := c.customerRepository.Save(nil, customer); err != nil {
		return echo.NewHTTPError(500, "could not update licenses").WithInternal(err)
	}

	return nil
}

func (c *CustomerService) UpdatePlan(customer *models.Customer, plan models.CustomerPlan, isTrial bool, trialEndDate *string) error {
	customer.Plan = plan
	customer.IsTrial = isTrial

	if isTrial {
		customer.Status = models.CustomerStatusTrial
		if end := utils.SafeDereference(trialEndDate); end != "" {
			parsed, err := time.Parse(time.DateOnly, end)
			if err != nil {
				return echo.NewHTTPError(400, "trial end date must be formatted as YYYY-MM-DD").WithInternal(err)
			}
			customer.TrialEndDate = &parsed
		}
	} else {
		customer.TrialEndDate = nil
		if customer.Status == models.CustomerStatusTrial {
			customer.Status = models.CustomerStatusActive
		}
	}

	if err := c.customerRepository.Save(nil, customer); err != nil {
		return echo.NewHTTPError(500, "could not update plan").WithInternal(err)
	}

	return nil
}
