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

package controllers

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/database/repositories"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/insights"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/l3montree-dev/vulify/transformer"
	"github.com/l3montree-dev/vulify/utils"

	"github.com/labstack/echo/v4"
)

type CustomerController struct {
	customerRepository     shared.CustomerRepository
	customerUserRepository shared.CustomerUserRepository
	emailRepository        shared.EmailCommunicationRepository
	scanRepository         shared.ScanRepository
	customerService        shared.CustomerService
	auditRecorder          shared.AuditRecorder
}

func NewCustomerController(customerRepository shared.CustomerRepository, customerUserRepository shared.CustomerUserRepository, emailRepository shared.EmailCommunicationRepository, scanRepository shared.ScanRepository, customerService shared.CustomerService, auditRecorder shared.AuditRecorder) *CustomerController {
	return &CustomerController{
		customerRepository:     customerRepository,
		customerUserRepository: customerUserRepository,
		emailRepository:        emailRepository,
		scanRepository:         scanRepository,
		customerService:        customerService,
		auditRecorder:          auditRecorder,
	}
}

func (controller *CustomerController) List(ctx shared.Context) error {
	customers, err := controller.customerRepository.ListOrdered()
	if err != nil {
		return echo.NewHTTPError(500, "could not load customers").WithInternal(err)
	}

	filtered := insights.Apply(customers,
		insights.TextSearch(ctx.QueryParam("q"),
			func(c models.Customer) string { return c.CompanyName },
			func(c models.Customer) string { return c.MainContactName },
			func(c models.Customer) string { return c.MainContactEmail },
		),
		insights.Equals(func(c models.Customer) string { return string(c.Status) }, ctx.QueryParam("status")),
		insights.Equals(func(c models.Customer) string { return string(c.Plan) }, ctx.QueryParam("plan")),
		insights.TagsIntersect(func(c models.Customer) []string { return c.Tags }, csvQueryParam(ctx, "tags")),
		insights.Where(boolQueryParam(ctx, "missed_payment"), func(c models.Customer) bool { return c.MissedPayment }),
	)

	return ctx.JSON(200, transformer.CustomersToDTOs(filtered))
}

func (controller *CustomerController) Create(ctx shared.Context) error {
	var req dtos.CustomerCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	customer := transformer.CustomerCreateRequestToModel(req)
	if err := controller.customerService.CreateCustomer(&customer); err != nil {
		return err
	}

	controller.auditRecorder.Record(models.AuditLog{
		EventType:   models.EventTypeDataModification,
		UserEmail:   shared.GetSession(ctx).GetEmail(),
		IPAddress:   ctx.RealIP(),
		UserAgent:   ctx.Request().UserAgent(),
		Resource:    "customer",
		Action:      "create",
		Description: fmt.Sprintf("created customer %s", customer.Slug),
	})

	return ctx.JSON(201, transformer.CustomerToDTO(customer))
}

func (controller *CustomerController) Read(ctx shared.Context) error {
	customer := shared.GetCustomer(ctx)

	users, err := controller.customerUserRepository.ListByCustomerID(customer.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not load customer users").WithInternal(err)
	}
	emails, err := controller.emailRepository.ListByCustomerID(customer.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not load email communications").WithInternal(err)
	}
	scans, err := controller.scanRepository.ListByCustomerID(customer.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not load scans").WithInternal(err)
	}

	return ctx.JSON(200, dtos.CustomerDetailsDTO{
		CustomerDTO: transformer.CustomerToDTO(customer),
		Users:       transformer.CustomerUsersToDTOs(users),
		Emails:      transformer.EmailCommunicationsToDTOs(emails),
		Scans:       transformer.ScansToDTOs(scans, time.Now()),
	})
}

func (controller *CustomerController) Update(ctx shared.Context) error {
	customer := shared.GetCustomer(ctx)

	req := ctx.Request().Body
	defer req.Close()

	var patchRequest dtos.CustomerPatchRequest
	if err := json.NewDecoder(req).Decode(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.ApplyCustomerPatchRequestToModel(patchRequest, &customer)

	if customer.CompanyName == "" || customer.Slug == "" {
		return echo.NewHTTPError(409, "customers with an empty name or an empty slug are not allowed")
	}

	if updated {
		customer.Normalize()
		if err := controller.customerRepository.Save(nil, &customer); err != nil {
			if repositories.IsDuplicateKeyError(err) {
				return echo.NewHTTPError(409, "customer with that name already exists").WithInternal(err)
			}
			return echo.NewHTTPError(500, "could not update customer").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.CustomerToDTO(customer))
}

func (controller *CustomerController) UpdateLicenses(ctx shared.Context) error {
	customer := shared.GetCustomer(ctx)

	var req dtos.UpdateLicensesRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if err := controller.customerService.UpdateLicenses(&customer, req.Licenses); err != nil {
		return err
	}

	return ctx.JSON(200, transformer.CustomerToDTO(customer))
}

func (controller *CustomerController) UpdatePlan(ctx shared.Context) error {
	customer := shared.GetCustomer(ctx)

	var req dtos.UpdatePlanRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if err := controller.customerService.UpdatePlan(&customer, models.CustomerPlan(req.Plan), req.IsTrial, req.TrialEndDate); err != nil {
		return err
	}

	controller.auditRecorder.Record(models.AuditLog{
		EventType:   models.EventTypeDataModification,
		UserEmail:   shared.GetSession(ctx).GetEmail(),
		IPAddress:   ctx.RealIP(),
		UserAgent:   ctx.Request().UserAgent(),
		Resource:    "customer",
		Action:      "update_plan",
		Description: fmt.Sprintf("moved customer %s to plan %s", customer.Slug, req.Plan),
	})

	return ctx.JSON(200, transformer.CustomerToDTO(customer))
}

// Tags returns the distinct tag list across all customers, sorted. The
// customer list page renders it as filter chips.
func (controller *CustomerController) Tags(ctx shared.Context) error {
	customers, err := controller.customerRepository.ListOrdered()
	if err != nil {
		return echo.NewHTTPError(500, "could not load customers").WithInternal(err)
	}

	tags := utils.Reduce(customers, func(acc []string, customer models.Customer) []string {
		return append(acc, customer.Tags...)
	}, []string{})
	tags = utils.UniqBy(tags, func(tag string) string { return tag })
	sort.Strings(tags)

	return ctx.JSON(200, tags)
}
