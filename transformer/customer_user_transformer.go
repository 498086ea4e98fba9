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
	"github.com/google/uuid"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/utils"
)

func CustomerUserCreateRequestToModel(customerID uuid.UUID, u dtos.CustomerUserCreateRequest) models.CustomerUser {
	return models.CustomerUser{
		CustomerID:    customerID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		IsMainContact: u.IsMainContact,
	}
}

func CustomerUserToDTO(u models.CustomerUser) dtos.CustomerUserDTO {
	return dtos.CustomerUserDTO{
		ID:            u.ID,
		CreatedAt:     u.CreatedAt,
		CustomerID:    u.CustomerID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		IsMainContact: u.IsMainContact,
		EmailVerified: u.EmailVerified,
		LastLogin:     u.LastLogin,
	}
}

func CustomerUsersToDTOs(users []models.CustomerUser) []dtos.CustomerUserDTO {
	return utils.Map(users, CustomerUserToDTO)
}
