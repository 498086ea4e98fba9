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
	"time"

	"github.com/l3montree-dev/vulify/cmd/vulify/api"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv api.Server, db shared.DB) APIV1Router {
	srv.Echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiV1Router := srv.Echo.Group("/api/v1")

	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		dbStatus := "healthy"
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "unhealthy"
		}

		return ctx.JSON(200, map[string]any{
			"status":        "ok",
			"database":      dbStatus,
			"uptimeSeconds": int(time.Since(api.StartedAt).Seconds()),
		})
	})

	return APIV1Router{Group: apiV1Router}
}
