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

type ScanResultController struct {
	scanResultRepository shared.ScanResultRepository
	scanService          shared.ScanService
}

func NewScanResultController(scanResultRepository shared.ScanResultRepository, scanService shared.ScanService) *ScanResultController {
	return &ScanResultController{
		scanResultRepository: scanResultRepository,
		scanService:          scanService,
	}
}

func (controller *ScanResultController) ListByScan(ctx shared.Context) error {
	scan := shared.GetScan(ctx)

	results, err := controller.scanResultRepository.ListByScanID(scan.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not load scan results").WithInternal(err)
	}

	filtered := insights.Apply(results,
		insights.TextSearch(ctx.QueryParam("q"),
			func(r models.ScanResult) string { return r.VulnerabilityName },
			func(r models.ScanResult) string { return r.VulnerabilityCode },
			func(r models.ScanResult) string { return r.Target },
		),
		insights.Equals(func(r models.ScanResult) string { return string(r.Severity) }, ctx.QueryParam("severity")),
		insights.Equals(func(r models.ScanResult) string { return string(r.Status) }, ctx.QueryParam("status")),
	)

	return ctx.JSON(200, transformer.ScanResultsToDTOs(filtered))
}

func (controller *ScanResultController) Create(ctx shared.Context) error {
	scan := shared.GetScan(ctx)

	var req dtos.ScanResultCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	results := []models.ScanResult{transformer.ScanResultCreateRequestToModel(scan.GetID(), req)}
	if err := controller.scanService.AttachResults(scan, results); err != nil {
		return err
	}

	return ctx.JSON(201, transformer.ScanResultToDTO(results[0]))
}

func (controller *ScanResultController) Read(ctx shared.Context) error {
	resultID, err := uuid.Parse(ctx.Param("resultID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid scan result id").WithInternal(err)
	}

	result, err := controller.scanResultRepository.Read(resultID)
	if err != nil {
		return echo.NewHTTPError(404, "scan result not found").WithInternal(err)
	}

	return ctx.JSON(200, transformer.ScanResultToDTO(result))
}

func (controller *ScanResultController) Update(ctx shared.Context) error {
	resultID, err := uuid.Parse(ctx.Param("resultID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid scan result id").WithInternal(err)
	}

	result, err := controller.scanResultRepository.Read(resultID)
	if err != nil {
		return echo.NewHTTPError(404, "scan result not found").WithInternal(err)
	}

	req := ctx.Request().Body
	defer req.Close()

	var patchRequest dtos.ScanResultPatchRequest
	if err := json.NewDecoder(req).Decode(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if patchRequest.Status != nil {
		result.Status = models.ScanResultStatus(*patchRequest.Status)
		if err := controller.scanResultRepository.Save(nil, &result); err != nil {
			return echo.NewHTTPError(500, "could not update scan result").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.ScanResultToDTO(result))
}
