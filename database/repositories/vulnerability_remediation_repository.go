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

type vulnerabilityRemediationRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.VulnerabilityRemediation]
}

func NewVulnerabilityRemediationRepository(db *gorm.DB) *vulnerabilityRemediationRepository {
	return &vulnerabilityRemediationRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.VulnerabilityRemediation](db),
	}
}

func (g *vulnerabilityRemediationRepository) ListOrdered() ([]models.VulnerabilityRemediation, error) {
	var ts []models.VulnerabilityRemediation
	err := g.db.Model(models.VulnerabilityRemediation{}).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		}).
		Order("last_modified DESC").Find(&ts).Error
	return ts, err
}

func (g *vulnerabilityRemediationRepository) Read(id uuid.UUID) (models.VulnerabilityRemediation, error) {
	var t models.VulnerabilityRemediation
	err := g.db.Model(models.VulnerabilityRemediation{}).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		}).
		First(&t, "id = ?", id).Error
	return t, err
}

// ReplaceSteps swaps the ordered step sequence of a remediation in a
// single transaction.
func (g *vulnerabilityRemediationRepository) ReplaceSteps(tx *gorm.DB, remediationID uuid.UUID, steps []models.RemediationStep) error {
	run := func(tx *gorm.DB) error {
		if err := tx.Where("remediation_id = ?", remediationID).Delete(&models.RemediationStep{}).Error; err != nil {
			return err
		}
		if len(steps) == 0 {
			return nil
		}
		for i := range steps {
			steps[i].RemediationID = remediationID
		}
		return tx.Create(&steps).Error
	}

	if tx != nil {
		return run(tx)
	}
	return g.Transaction(run)
}
