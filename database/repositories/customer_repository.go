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

type customerRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Customer]
}

func NewCustomerRepository(db *gorm.DB) *customerRepository {
	return &customerRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Customer](db),
	}
}

// ListOrdered returns all customers, newest first - the order every
// customer facing page renders.
func (g *customerRepository) ListOrdered() ([]models.Customer, error) {
	var ts []models.Customer
	err := g.db.Model(models.Customer{}).Order("created_at DESC").Find(&ts).Error
	return ts, err
}

func (g *customerRepository) ReadBySlug(slug string) (models.Customer, error) {
	var t models.Customer
	err := g.db.Model(models.Customer{}).Where("slug = ?", slug).First(&t).Error
	return t, err
}

func (g *customerRepository) Create(tx *gorm.DB, customer *models.Customer) error {
	customer.Normalize()
	return g.GetDB(tx).Create(customer).Error
}

func (g *customerRepository) Save(tx *gorm.DB, customer *models.Customer) error {
	customer.Normalize()
	return g.GetDB(tx).Save(customer).Error
}

func (g *customerRepository) CreateBatch(tx *gorm.DB, customers []models.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	for i := range customers {
		customers[i].Normalize()
	}
	return g.GetDB(tx).Create(&customers).Error
}
