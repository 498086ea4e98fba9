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
	"github.com/labstack/echo/v4"
)

// KnowledgeBaseRouter groups the vulnerability template and remediation
// routes, the knowledge layer the scan engine works from.
type KnowledgeBaseRouter struct {
	*echo.Group
}

func NewKnowledgeBaseRouter(
	sessionRouter SessionRouter,
	templateController *controllers.VulnerabilityTemplateController,
	remediationController *controllers.VulnerabilityRemediationController,
) KnowledgeBaseRouter {
	templatesRouter := sessionRouter.Group.Group("/vulnerability-templates")
	templatesRouter.GET("/", templateController.List)
	templatesRouter.POST("/", templateController.Create)
	templatesRouter.GET("/:templateID/", templateController.Read)
	templatesRouter.PATCH("/:templateID/", templateController.Update)

	remediationsRouter := sessionRouter.Group.Group("/vulnerability-remediations")
	remediationsRouter.GET("/", remediationController.List)
	remediationsRouter.POST("/", remediationController.Create)
	remediationsRouter.GET("/:remediationID/", remediationController.Read)
	remediationsRouter.PATCH("/:remediationID/", remediationController.Update)
	remediationsRouter.POST("/:remediationID/vote/", remediationController.Vote)

	return KnowledgeBaseRouter{Group: templatesRouter}
}
