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

type scanRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Scan]
}

func NewScanRepository(db *gorm.DB) *scanRepository {
	return &scanRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Scan](db),
	}
}

// ListOrdered returns all scans, most recently started first. Scans
// which never started sort last.
func (g *scanRepository) ListOrdered() ([]models.Scan, error) {
	var ts []models.Scan
	err := g.db.Model(models.Scan{}).Order("started_at DESC NULLS LAST").Find(&ts).Error
	return ts, err
}

func (g *scanRepository) ListByCustomerID(customerID uuid.UUID) ([]models.Scan, error) {
	var ts []models.Scan
	err := g.db.Model(models.Scan{}).Where("customer_id = ?", customerID).Order("started_at DESC NULLS LAST").Find(&ts).Error
	return ts, err
}
