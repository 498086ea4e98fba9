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

package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/l3montree-dev/vulify/shared"
	"github.com/labstack/echo/v4"
)

func getCookie(name string, cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func tokenFromRequest(ctx echo.Context) string {
	if cookie := getCookie(CookieName, ctx.Cookies()); cookie != nil {
		return cookie.Value
	}

	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}

// SessionMiddleware authenticates every request behind it. There are no
// public resources below the session boundary, a missing or broken
// token is always a 401.
func SessionMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			tokenString := tokenFromRequest(ctx)
			if tokenString == "" {
				return echo.NewHTTPError(401, "no session token provided")
			}

			session, err := VerifySession(secret, tokenString)
			if err != nil {
				slog.Warn("could not verify session token", "err", err)
				return echo.NewHTTPError(401, "invalid session token").WithInternal(err)
			}

			shared.SetSession(ctx, session)
			return next(ctx)
		}
	}
}
