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
	"os"

	"github.com/l3montree-dev/vulify/auth"
	"github.com/l3montree-dev/vulify/controllers"
	"github.com/labstack/echo/v4"
)

type SessionRouter struct {
	*echo.Group
}

// NewSessionRouter registers the login/logout endpoints on the public
// group and opens the authenticated group every other router hangs off.
func NewSessionRouter(apiV1Router APIV1Router, sessionController *controllers.SessionController) SessionRouter {
	// minting and clearing a session works without one
	apiV1Router.POST("/session/", sessionController.Login)
	apiV1Router.DELETE("/session/", sessionController.Logout)

	sessionRouter := apiV1Router.Group.Group("", auth.SessionMiddleware(os.Getenv("SESSION_SECRET")))

	sessionRouter.GET("/whoami/", sessionController.Whoami)
	sessionRouter.PATCH("/users/me/", sessionController.UpdateMe)

	return SessionRouter{Group: sessionRouter}
}
