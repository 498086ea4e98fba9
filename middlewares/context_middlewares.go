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

package middlewares

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/labstack/echo/v4"
)

// CustomerMiddleware resolves the :customerSlug path parameter and puts
// the customer on the context. Routes behind it can use
// shared.GetCustomer without a nil check.
func CustomerMiddleware(customerRepository shared.CustomerRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			slug := shared.SanitizeParam(ctx.Param("customerSlug"))
			if slug == "" {
				return echo.NewHTTPError(400, "invalid customer slug")
			}

			customer, err := customerRepository.ReadBySlug(slug)
			if err != nil {
				return echo.NewHTTPError(404, "could not find customer").WithInternal(err)
			}

			shared.SetCustomer(ctx, customer)
			return next(ctx)
		}
	}
}

// ScanMiddleware resolves the :scanID path parameter and puts the scan
// on the context.
func ScanMiddleware(scanRepository shared.ScanRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			scanID, err := uuid.Parse(ctx.Param("scanID"))
			if err != nil {
				return echo.NewHTTPError(400, "invalid scan id").WithInternal(err)
			}

			scan, err := scanRepository.Read(scanID)
			if err != nil {
				return echo.NewHTTPError(404, "could not find scan").WithInternal(err)
			}

			shared.SetScan(ctx, scan)
			return next(ctx)
		}
	}
}
