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
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/services"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/l3montree-dev/vulify/transformer"

	"github.com/labstack/echo/v4"
)

type CustomerUserController struct {
	customerUserRepository shared.CustomerUserRepository
	emailRepository        shared.EmailCommunicationRepository
	mailSender             shared.MailSender
}

func NewCustomerUserController(customerUserRepository shared.CustomerUserRepository, emailRepository shared.EmailCommunicationRepository, mailSender shared.MailSender) *CustomerUserController {
	return &CustomerUserController{
		customerUserRepository: customerUserRepository,
		emailRepository:        emailRepository,
		mailSender:             mailSender,
	}
}

func (controller *CustomerUserController) List(ctx shared.Context) error {
	customer := shared.GetCustomer(ctx)

	users, err := controller.customerUserRepository.ListByCustomerID(customer.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not load customer users").WithInternal(err)
	}

	return ctx.JSON(200, transformer.CustomerUsersToDTOs(users))
}

func (controller *CustomerUserController) Create(ctx shared.Context) error {
	customer := shared.GetCustomer(ctx)

	var req dtos.CustomerUserCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	user := transformer.CustomerUserCreateRequestToModel(customer.GetID(), req)
	if err := controller.customerUserRepository.Create(nil, &user); err != nil {
		return echo.NewHTTPError(500, "could not create customer user").WithInternal(err)
	}

	return ctx.JSON(201, transformer.CustomerUserToDTO(user))
}

// PasswordReset fires a password reset mail for a customer seat and
// records the communication. Mail delivery is fire and forget, a broken
// mail webhook never fails the request.
func (controller *CustomerUserController) PasswordReset(ctx shared.Context) error {
	customer := shared.GetCustomer(ctx)

	userID, err := uuid.Parse(ctx.Param("userID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid user id").WithInternal(err)
	}

	user, err := controller.customerUserRepository.Read(userID)
	if err != nil || user.CustomerID != customer.GetID() {
		return echo.NewHTTPError(404, "customer user not found").WithInternal(err)
	}

	mail := services.NewPasswordResetMail(user.Email, user.Name)

	email := models.EmailCommunication{
		CustomerID:     customer.GetID(),
		RecipientEmail: user.Email,
		Subject:        mail.Subject,
		Body:           mail.Body,
		SentDate:       time.Now(),
		Status:         models.EmailStatusSent,
		EmailType:      "password_reset",
	}
	if err := controller.emailRepository.Create(nil, &email); err != nil {
		return echo.NewHTTPError(500, "could not record email communication").WithInternal(err)
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := controller.mailSender.Send(sendCtx, mail); err != nil {
			slog.Error("could not send password reset mail", "err", err, "recipient", user.Email)
		}
	}()

	return ctx.JSON(200, transformer.EmailCommunicationToDTO(email))
}
