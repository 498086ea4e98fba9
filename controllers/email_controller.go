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

	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/services"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/l3montree-dev/vulify/transformer"

	"github.com/labstack/echo/v4"
)

type EmailController struct {
	emailRepository shared.EmailCommunicationRepository
	mailSender      shared.MailSender
}

func NewEmailController(emailRepository shared.EmailCommunicationRepository, mailSender shared.MailSender) *EmailController {
	return &EmailController{
		emailRepository: emailRepository,
		mailSender:      mailSender,
	}
}

func (controller *EmailController) List(ctx shared.Context) error {
	customer := shared.GetCustomer(ctx)

	emails, err := controller.emailRepository.ListByCustomerID(customer.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not load email communications").WithInternal(err)
	}

	return ctx.JSON(200, transformer.EmailCommunicationsToDTOs(emails))
}

// Send records the communication first and fires the mailer afterwards.
// The record is the source of truth for the customer timeline, delivery
// status updates are out of scope.
func (controller *EmailController) Send(ctx shared.Context) error {
	customer := shared.GetCustomer(ctx)

	var req dtos.SendEmailRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	email := transformer.SendEmailRequestToModel(customer.GetID(), req, time.Now())
	if err := controller.emailRepository.Create(nil, &email); err != nil {
		return echo.NewHTTPError(500, "could not record email communication").WithInternal(err)
	}

	mail := shared.Mail{
		FromName: services.MailFromName,
		To:       email.RecipientEmail,
		Subject:  email.Subject,
		Body:     email.Body,
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := controller.mailSender.Send(sendCtx, mail); err != nil {
			slog.Error("could not send mail", "err", err, "recipient", email.RecipientEmail)
		}
	}()

	return ctx.JSON(201, transformer.EmailCommunicationToDTO(email))
}
