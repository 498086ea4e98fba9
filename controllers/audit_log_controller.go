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
	"fmt"

	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/insights"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/l3montree-dev/vulify/transformer"

	"github.com/labstack/echo/v4"
)

// AuditLogController reads and appends the audit trail. There is no
// update or delete handler on purpose.
type AuditLogController struct {
	auditLogRepository shared.AuditLogRepository
}

func NewAuditLogController(auditLogRepository shared.AuditLogRepository) *AuditLogController {
	return &AuditLogController{
		auditLogRepository: auditLogRepository,
	}
}

func (controller *AuditLogController) List(ctx shared.Context) error {
	logs, err := controller.auditLogRepository.ListOrdered()
	if err != nil {
		return echo.NewHTTPError(500, "could not load audit logs").WithInternal(err)
	}

	filtered := insights.Apply(logs,
		insights.TextSearch(ctx.QueryParam("q"),
			func(l models.AuditLog) string { return l.UserEmail },
			func(l models.AuditLog) string { return l.IPAddress },
			func(l models.AuditLog) string { return l.Resource },
			func(l models.AuditLog) string { return l.Description },
		),
		insights.Equals(func(l models.AuditLog) string { return string(l.EventType) }, ctx.QueryParam("event_type")),
		insights.Equals(func(l models.AuditLog) string { return string(l.Severity) }, ctx.QueryParam("severity")),
		insights.Equals(func(l models.AuditLog) string { return string(l.Status) }, ctx.QueryParam("status")),
	)

	return ctx.JSON(200, transformer.AuditLogsToDTOs(filtered))
}

func (controller *AuditLogController) Create(ctx shared.Context) error {
	var req dtos.AuditLogCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	log := transformer.AuditLogCreateRequestToModel(req)
	if err := controller.auditLogRepository.Create(nil, &log); err != nil {
		return echo.NewHTTPError(500, "could not create audit log").WithInternal(err)
	}

	return ctx.JSON(201, transformer.AuditLogToDTO(log))
}
