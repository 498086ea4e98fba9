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
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulify/auth"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/l3montree-dev/vulify/transformer"

	"github.com/labstack/echo/v4"
)

// SessionController mints and clears dashboard sessions. Password
// verification is delegated to the identity layer in front of this API,
// the login endpoint only exchanges a known admin email for a token.
type SessionController struct {
	userRepository shared.UserRepository
	auditRecorder  shared.AuditRecorder
	secret         string
}

func NewSessionController(userRepository shared.UserRepository, auditRecorder shared.AuditRecorder, secret string) *SessionController {
	return &SessionController{
		userRepository: userRepository,
		auditRecorder:  auditRecorder,
		secret:         secret,
	}
}

func (controller *SessionController) Login(ctx shared.Context) error {
	var req dtos.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	user, err := controller.userRepository.ReadByEmail(req.Email)
	if err != nil {
		controller.auditRecorder.Record(models.AuditLog{
			EventType:   models.EventTypeFailedLogin,
			Severity:    models.SeverityMedium,
			UserEmail:   req.Email,
			IPAddress:   ctx.RealIP(),
			UserAgent:   ctx.Request().UserAgent(),
			Resource:    "session",
			Action:      "login",
			Status:      models.AuditLogStatusFailed,
			Description: "login attempt with unknown email",
		})
		return echo.NewHTTPError(404, "user not found").WithInternal(err)
	}

	now := time.Now()
	token, err := auth.SignSession(controller.secret, user.ID.String(), user.Email, now)
	if err != nil {
		return echo.NewHTTPError(500, "could not sign session token").WithInternal(err)
	}

	ctx.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(auth.SessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(200, map[string]any{
		"token": token,
		"user":  transformer.UserToDTO(user),
	})
}

func (controller *SessionController) Whoami(ctx shared.Context) error {
	session := shared.GetSession(ctx)

	userID, err := uuid.Parse(session.GetUserID())
	if err != nil {
		return echo.NewHTTPError(400, "invalid user id in session").WithInternal(err)
	}

	user, err := controller.userRepository.Read(userID)
	if err != nil {
		return echo.NewHTTPError(404, "user not found").WithInternal(err)
	}

	return ctx.JSON(200, transformer.UserToDTO(user))
}

func (controller *SessionController) UpdateMe(ctx shared.Context) error {
	session := shared.GetSession(ctx)

	userID, err := uuid.Parse(session.GetUserID())
	if err != nil {
		return echo.NewHTTPError(400, "invalid user id in session").WithInternal(err)
	}

	user, err := controller.userRepository.Read(userID)
	if err != nil {
		return echo.NewHTTPError(404, "user not found").WithInternal(err)
	}

	req := ctx.Request().Body
	defer req.Close()

	var patchRequest dtos.UserPatchRequest
	if err := json.NewDecoder(req).Decode(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.ApplyUserPatchRequestToModel(patchRequest, &user)

	if updated {
		if err := controller.userRepository.Save(nil, &user); err != nil {
			return echo.NewHTTPError(500, "could not update user").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.UserToDTO(user))
}

// Logout clears the cookie. The JWT itself stays valid until expiry,
// sessions are stateless on the server side.
func (controller *SessionController) Logout(ctx shared.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.NoContent(200)
}
