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

type ScanRouter struct {
	*echo.Group
}

func NewScanRouter(
	sessionRouter SessionRouter,
	scanController *controllers.ScanController,
	scanResultController *controllers.ScanResultController,
	scanRepository shared.ScanRepository,
) ScanRouter {
	scansRouter := sessionRouter.Group.Group("/scans")
	scansRouter.GET("/", scanController.List)
	scansRouter.POST("/", scanController.Create)

	scanRouter := scansRouter.Group("/:scanID",
		middlewares.ScanMiddleware(scanRepository))

	scanRouter.GET("/", scanController.Read)
	scanRouter.PATCH("/", scanController.Update)
	scanRouter.GET("/results/", scanResultController.ListByScan)
	scanRouter.POST("/results/", scanResultController.Create)

	// deep links address results without the scan scope
	sessionRouter.GET("/scan-results/:resultID/", scanResultController.Read)
	sessionRouter.PATCH("/scan-results/:resultID/", scanResultController.Update)

	return ScanRouter{Group: scanRouter}
}
