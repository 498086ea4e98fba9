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

package transformer

import (
	"github.com/l3montree-dev/vulify/database"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
)

func ApplyUserPatchRequestToModel(p dtos.UserPatchRequest, user *models.User) bool {
	updated := false

	if p.FullName != nil {
		updated = true
		user.FullName = *p.FullName
	}

	if p.Department != nil {
		updated = true
		user.Department = *p.Department
	}

	if p.Phone != nil {
		updated = true
		user.Phone = *p.Phone
	}

	if p.NotificationPreferences != nil {
		updated = true
		user.NotificationPreferences = database.JSONB(*p.NotificationPreferences)
	}

	return updated
}

func UserToDTO(u models.User) dtos.UserDTO {
	return dtos.UserDTO{
		ID:        u.ID,
		CreatedAt: u.CreatedAt,

		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,

		Department: u.Department,
		Phone:      u.Phone,

		NotificationPreferences: map[string]any(u.NotificationPreferences),
		LastPasswordReset:       u.LastPasswordReset,
	}
}
