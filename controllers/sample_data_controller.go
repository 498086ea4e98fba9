// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package controllers

import (
	"time"

	"github.com/l3montree-dev/vulify/services"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/l3montree-dev/vulify/transformer"
)

// SampleDataController backs the "load sample data" actions on empty
// pages. Every handler bulk creates the fixture records and returns them.
type SampleDataController struct {
	sampleDataService *services.SampleDataService
}

func NewSampleDataController(sampleDataService *services.SampleDataService) *SampleDataController {
	return &SampleDataController{
		sampleDataService: sampleDataService,
	}
}

func (controller *SampleDataController) Customers(ctx shared.Context) error {
	customers, err := controller.sampleDataService.SeedCustomers()
	if err != nil {
		return err
	}
	return ctx.JSON(201, transformer.CustomersToDTOs(customers))
}

func (controller *SampleDataController) Scans(ctx shared.Context) error {
	scans, err := controller.sampleDataService.SeedScans()
	if err != nil {
		return err
	}
	return ctx.JSON(201, transformer.ScansToDTOs(scans, time.Now()))
}

func (controller *SampleDataController) AuditLogs(ctx shared.Context) error {
	logs, err := controller.sampleDataService.SeedAuditLogs()
	if err != nil {
		return err
	}
	return ctx.JSON(201, transformer.AuditLogsToDTOs(logs))
}

func (controller *SampleDataController) Templates(ctx shared.Context) error {
	templates, err := controller.sampleDataService.SeedTemplates()
	if err != nil {
		return err
	}
	return ctx.JSON(201, transformer.VulnerabilityTemplatesToDTOs(templates))
}

func (controller *SampleDataController) Remediations(ctx shared.Context) error {
	remediations, err := controller.sampleDataService.SeedRemediations()
	if err != nil {
		return err
	}
	return ctx.JSON(201, transformer.RemediationsToDTOs(remediations))
}

func (controller *SampleDataController) CustomerUsers(ctx shared.Context) error {
	customer := shared.GetCustomer(ctx)

	users, err := controller.sampleDataService.SeedCustomerUsers(customer)
	if err != nil {
		return err
	}
	return ctx.JSON(201, transformer.CustomerUsersToDTOs(users))
}

func (controller *SampleDataController) Emails(ctx shared.Context) error {
	customer := shared.GetCustomer(ctx)

	emails, err := controller.sampleDataService.SeedEmails(customer)
	if err != nil {
		return err
	}
	return ctx.JSON(201, transformer.EmailCommunicationsToDTOs(emails))
}
