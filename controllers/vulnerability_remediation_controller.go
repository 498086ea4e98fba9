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
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/insights"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/l3montree-dev/vulify/transformer"

	"github.com/labstack/echo/v4"
)

type VulnerabilityRemediationController struct {
	remediationRepository shared.VulnerabilityRemediationRepository
}

func NewVulnerabilityRemediationController(remediationRepository shared.VulnerabilityRemediationRepository) *VulnerabilityRemediationController {
	return &VulnerabilityRemediationController{
		remediationRepository: remediationRepository,
	}
}

func (controller *VulnerabilityRemediationController) List(ctx shared.Context) error {
	remediations, err := controller.remediationRepository.ListOrdered()
	if err != nil {
		return echo.NewHTTPError(500, "could not load remediations").WithInternal(err)
	}

	filtered := insights.Apply(remediations,
		insights.TextSearch(ctx.QueryParam("q"),
			func(r models.VulnerabilityRemediation) string { return r.VulnerabilityName },
			func(r models.VulnerabilityRemediation) string { return r.VulnerabilityCode },
			func(r models.VulnerabilityRemediation) string { return r.Category },
		),
		insights.Equals(func(r models.VulnerabilityRemediation) string { return string(r.Severity) }, ctx.QueryParam("severity")),
		insights.Equals(func(r models.VulnerabilityRemediation) string { return string(r.Source) }, ctx.QueryParam("source")),
	)

	return ctx.JSON(200, transformer.RemediationsToDTOs(filtered))
}

func (controller *VulnerabilityRemediationController) Create(ctx shared.Context) error {
	var req dtos.RemediationCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	// Create cascades the steps alongside the remediation row.
	remediation := transformer.RemediationCreateRequestToModel(req, time.Now())
	if err := controller.remediationRepository.Create(nil, &remediation); err != nil {
		return echo.NewHTTPError(500, "could not create remediation").WithInternal(err)
	}

	return ctx.JSON(201, transformer.RemediationToDTO(remediation))
}

func (controller *VulnerabilityRemediationController) Read(ctx shared.Context) error {
	remediationID, err := uuid.Parse(ctx.Param("remediationID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid remediation id").WithInternal(err)
	}

	remediation, err := controller.remediationRepository.Read(remediationID)
	if err != nil {
		return echo.NewHTTPError(404, "remediation not found").WithInternal(err)
	}

	return ctx.JSON(200, transformer.RemediationToDTO(remediation))
}

// Update applies a team edit: any change marks the remediation
// team_edited and bumps last_modified. A steps patch replaces the whole
// ordered sequence.
func (controller *VulnerabilityRemediationController) Update(ctx shared.Context) error {
	remediationID, err := uuid.Parse(ctx.Param("remediationID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid remediation id").WithInternal(err)
	}

	remediation, err := controller.remediationRepository.Read(remediationID)
	if err != nil {
		return echo.NewHTTPError(404, "remediation not found").WithInternal(err)
	}

	req := ctx.Request().Body
	defer req.Close()

	var patchRequest dtos.RemediationPatchRequest
	if err := json.NewDecoder(req).Decode(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.ApplyRemediationPatchRequestToModel(patchRequest, &remediation)

	if updated {
		remediation.Source = models.RemediationSourceTeamEdited
		remediation.LastModified = time.Now()

		if patchRequest.Steps != nil {
			if err := controller.remediationRepository.ReplaceSteps(nil, remediation.GetID(), remediation.Steps); err != nil {
				return echo.NewHTTPError(500, "could not replace remediation steps").WithInternal(err)
			}
		}

		if err := controller.remediationRepository.Save(nil, &remediation); err != nil {
			return echo.NewHTTPError(500, "could not update remediation").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.RemediationToDTO(remediation))
}

func (controller *VulnerabilityRemediationController) Vote(ctx shared.Context) error {
	remediationID, err := uuid.Parse(ctx.Param("remediationID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid remediation id").WithInternal(err)
	}

	remediation, err := controller.remediationRepository.Read(remediationID)
	if err != nil {
		return echo.NewHTTPError(404, "remediation not found").WithInternal(err)
	}

	var req dtos.RemediationVoteRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if req.Vote == "up" {
		remediation.ThumbsUp++
	} else {
		remediation.ThumbsDown++
	}

	if err := controller.remediationRepository.Save(nil, &remediation); err != nil {
		return echo.NewHTTPError(500, "could not save vote").WithInternal(err)
	}

	return ctx.JSON(200, transformer.RemediationToDTO(remediation))
}
