// Copyright (C) 2025 l3montree GmbH
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package router

import (
	"github.com/l3montree-dev/vulify/controllers"
	"github.com/l3montree-dev/vulify/middlewares"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/labstack/echo/v4"
)

type CustomerRouter struct {
	*echo.Group
}

func NewCustomerRouter(
	sessionRouter SessionRouter,
	customerController *controllers.CustomerController,
	customerUserController *controllers.CustomerUserController,
	emailController *controllers.EmailController,
	customerRepository shared.CustomerRepository,
) CustomerRouter {
	customersRouter := sessionRouter.Group.Group("/customers")
	customersRouter.GET("/", customerController.List)
	customersRouter.POST("/", customerController.Create)
	customersRouter.GET("/tags/", customerController.Tags)

	/**
	Customer scoped router
	All routes below this line are scoped to a specific customer.
	*/
	customerRouter := customersRouter.Group("/:customerSlug",
		middlewares.CustomerMiddleware(customerRepository))

	customerRouter.GET("/", customerController.Read)
	customerRouter.PATCH("/", customerController.Update)
	customerRouter.PUT("/licenses/", customerController.UpdateLicenses)
	customerRouter.PUT("/plan/", customerController.UpdatePlan)

	customerRouter.GET("/users/", customerUserController.List)
	customerRouter.POST("/users/", customerUserController.Create)
	customerRouter.POST("/users/:userID/password-reset/", customerUserController.PasswordReset)

	customerRouter.GET("/emails/", emailController.List)
	customerRouter.POST("/emails/", emailController.Send)

	return CustomerRouter{Group: customerRouter}
}
