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

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/vulify/database/models"
	"gorm.io/gorm"
)

type customerUserRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.CustomerUser]
}

func NewCustomerUserRepository(db *gorm.DB) *customerUserRepository {
	return &customerUserRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.CustomerUser](db),
	}
}

func (g *customerUserRepository) ListByCustomerID(customerID uuid.UUID) ([]models.CustomerUser, error) {
	var ts []models.CustomerUser
	err := g.db.Model(models.CustomerUser{}).Where("customer_id = ?", customerID).Order("created_at ASC").Find(&ts).Error
	return ts, err
}
