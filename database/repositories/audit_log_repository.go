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

// audit logs are append only - the repository deliberately exposes no
// update or delete beyond the embedded generic ones, which nothing calls.
type auditLogRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.AuditLog]
}

func NewAuditLogRepository(db *gorm.DB) *auditLogRepository {
	return &auditLogRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.AuditLog](db),
	}
}

func (g *auditLogRepository) ListOrdered() ([]models.AuditLog, error) {
	var ts []models.AuditLog
	err := g.db.Model(models.AuditLog{}).Order("created_at DESC").Find(&ts).Error
	return ts, err
}
