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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UserPatchRequest struct {
	FullName   *string `json:"fullName"`
	Department *string `json:"department"`
	Phone      *string `json:"phone"`

	NotificationPreferences *map[string]any `json:"notificationPreferences"`
}

type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`

	Department string `json:"department"`
	Phone      string `json:"phone"`

	NotificationPreferences map[string]any `json:"notificationPreferences"`
	LastPasswordReset       *time.Time     `json:"lastPasswordReset"`
}
