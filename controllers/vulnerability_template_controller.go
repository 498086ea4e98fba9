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

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/insights"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/l3montree-dev/vulify/transformer"

	"github.com/labstack/echo/v4"
)

type VulnerabilityTemplateController struct {
	templateRepository shared.VulnerabilityTemplateRepository
}

func NewVulnerabilityTemplateController(templateRepository shared.VulnerabilityTemplateRepository) *VulnerabilityTemplateController {
	return &VulnerabilityTemplateController{
		templateRepository: templateRepository,
	}
}

func (controller *VulnerabilityTemplateController) List(ctx shared.Context) error {
	templates, err := controller.templateRepository.ListOrdered()
	if err != nil {
		return echo.NewHTTPError(500, "could not load vulnerability templates").WithInternal(err)
	}

	filtered := insights.Apply(templates,
		insights.TextSearch(ctx.QueryParam("q"),
			func(t models.VulnerabilityTemplate) string { return t.TemplateName },
			func(t models.VulnerabilityTemplate) string { return t.VulnerabilityType },
		),
		insights.Equals(func(t models.VulnerabilityTemplate) string { return string(t.Severity) }, ctx.QueryParam("severity")),
		insights.TagsIntersect(func(t models.VulnerabilityTemplate) []string { return t.Tags }, csvQueryParam(ctx, "tags")),
		// disabled templates are hidden unless the toggle is on
		insights.Where(!boolQueryParam(ctx, "show_disabled"), func(t models.VulnerabilityTemplate) bool {
			return t.Enabled
		}),
	)

	return ctx.JSON(200, transformer.VulnerabilityTemplatesToDTOs(filtered))
}

func (controller *VulnerabilityTemplateController) Create(ctx shared.Context) error {
	var req dtos.VulnerabilityTemplateCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	template := transformer.VulnerabilityTemplateCreateRequestToModel(req)
	if err := controller.templateRepository.Create(nil, &template); err != nil {
		return echo.NewHTTPError(500, "could not create vulnerability template").WithInternal(err)
	}

	return ctx.JSON(201, transformer.VulnerabilityTemplateToDTO(template))
}

func (controller *VulnerabilityTemplateController) Read(ctx shared.Context) error {
	templateID, err := uuid.Parse(ctx.Param("templateID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid template id").WithInternal(err)
	}

	template, err := controller.templateRepository.Read(templateID)
	if err != nil {
		return echo.NewHTTPError(404, "vulnerability template not found").WithInternal(err)
	}

	return ctx.JSON(200, transformer.VulnerabilityTemplateToDTO(template))
}

func (controller *VulnerabilityTemplateController) Update(ctx shared.Context) error {
	templateID, err := uuid.Parse(ctx.Param("templateID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid template id").WithInternal(err)
	}

	template, err := controller.templateRepository.Read(templateID)
	if err != nil {
		return echo.NewHTTPError(404, "vulnerability template not found").WithInternal(err)
	}

	req := ctx.Request().Body
	defer req.Close()

	var patchRequest dtos.VulnerabilityTemplatePatchRequest
	if err := json.NewDecoder(req).Decode(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.ApplyVulnerabilityTemplatePatchRequestToModel(patchRequest, &template)

	if updated {
		if err := controller.templateRepository.Save(nil, &template); err != nil {
			return echo.NewHTTPError(500, "could not update vulnerability template").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.VulnerabilityTemplateToDTO(template))
}
