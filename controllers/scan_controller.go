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

	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/insights"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/l3montree-dev/vulify/transformer"

	"github.com/labstack/echo/v4"
)

type ScanController struct {
	scanRepository       shared.ScanRepository
	scanResultRepository shared.ScanResultRepository
	scanService          shared.ScanService
}

func NewScanController(scanRepository shared.ScanRepository, scanResultRepository shared.ScanResultRepository, scanService shared.ScanService) *ScanController {
	return &ScanController{
		scanRepository:       scanRepository,
		scanResultRepository: scanResultRepository,
		scanService:          scanService,
	}
}

func (controller *ScanController) List(ctx shared.Context) error {
	scans, err := controller.scanRepository.ListOrdered()
	if err != nil {
		return echo.NewHTTPError(500, "could not load scans").WithInternal(err)
	}

	now := time.Now()
	filtered := insights.Apply(scans,
		insights.TextSearch(ctx.QueryParam("q"),
			func(s models.Scan) string { return s.ScanName },
			func(s models.Scan) string { return s.NodeName },
		),
		insights.Equals(func(s models.Scan) string { return string(s.Status) }, ctx.QueryParam("status")),
		insights.Equals(func(s models.Scan) string { return s.ScanType }, ctx.QueryParam("scan_type")),
		insights.Where(boolQueryParam(ctx, "long_running"), func(s models.Scan) bool {
			return s.IsLongRunning(now, transformer.LongRunningThreshold)
		}),
	)

	return ctx.JSON(200, transformer.ScansToDTOs(filtered, now))
}

func (controller *ScanController) Create(ctx shared.Context) error {
	var req dtos.ScanCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	scan := transformer.ScanCreateRequestToModel(req)
	if err := controller.scanService.LaunchScan(&scan); err != nil {
		return err
	}

	return ctx.JSON(201, transformer.ScanToDTO(scan, time.Now()))
}

func (controller *ScanController) Read(ctx shared.Context) error {
	scan := shared.GetScan(ctx)

	results, err := controller.scanResultRepository.ListByScanID(scan.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not load scan results").WithInternal(err)
	}

	return ctx.JSON(200, dtos.ScanDetailsDTO{
		ScanDTO: transformer.ScanToDTO(scan, time.Now()),
		Results: transformer.ScanResultsToDTOs(results),
	})
}

func (controller *ScanController) Update(ctx shared.Context) error {
	scan := shared.GetScan(ctx)

	req := ctx.Request().Body
	defer req.Close()

	var patchRequest dtos.ScanPatchRequest
	if err := json.NewDecoder(req).Decode(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.ApplyScanPatchRequestToModel(patchRequest, &scan)

	if updated {
		if err := controller.scanRepository.Save(nil, &scan); err != nil {
			return echo.NewHTTPError(500, "could not update scan").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.ScanToDTO(scan, time.Now()))
}
