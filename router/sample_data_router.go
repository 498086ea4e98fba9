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

type SampleDataRouter struct {
	*echo.Group
}

// NewSampleDataRouter registers the fixture loading endpoints behind
// the "load sample data" actions on empty pages.
func NewSampleDataRouter(
	sessionRouter SessionRouter,
	sampleDataController *controllers.SampleDataController,
	customerRepository shared.CustomerRepository,
) SampleDataRouter {
	sampleDataRouter := sessionRouter.Group.Group("/sample-data")
	sampleDataRouter.POST("/customers/", sampleDataController.Customers)
	sampleDataRouter.POST("/scans/", sampleDataController.Scans)
	sampleDataRouter.POST("/audit-logs/", sampleDataController.AuditLogs)
	sampleDataRouter.POST("/vulnerability-templates/", sampleDataController.Templates)
	sampleDataRouter.POST("/vulnerability-remediations/", sampleDataController.Remediations)

	customerMiddleware := middlewares.CustomerMiddleware(customerRepository)
	sampleDataRouter.POST("/customers/:customerSlug/users/", sampleDataController.CustomerUsers, customerMiddleware)
	sampleDataRouter.POST("/customers/:customerSlug/emails/", sampleDataController.Emails, customerMiddleware)

	return SampleDataRouter{Group: sampleDataRouter}
}
