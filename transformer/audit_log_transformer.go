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
	"github.com/l3montree-dev/vulify/utils"
)

func AuditLogCreateRequestToModel(r dtos.AuditLogCreateRequest) models.AuditLog {
	log := models.AuditLog{
		EventType: models.AuditEventType(r.EventType),
		Severity:  models.SeverityInfo,

		UserEmail: r.UserEmail,
		IPAddress: r.IPAddress,
		Location:  r.Location,
		UserAgent: r.UserAgent,

		Resource:    r.Resource,
		Action:      r.Action,
		Status:      models.AuditLogStatusSuccess,
		Description: r.Description,
		Metadata:    database.JSONB(r.Metadata),
	}

	if r.Severity != "" {
		log.Severity = models.Severity(r.Severity)
	}
	if r.Status != "" {
		log.Status = models.AuditLogStatus(r.Status)
	}
	if log.Metadata == nil {
		log.Metadata = database.JSONB{}
	}

	return log
}

func AuditLogToDTO(a models.AuditLog) dtos.AuditLogDTO {
	return dtos.AuditLogDTO{
		ID:        a.ID,
		CreatedAt: a.CreatedAt,

		EventType: string(a.EventType),
		Severity:  string(a.Severity),

		UserEmail: a.UserEmail,
		IPAddress: a.IPAddress,
		Location:  a.Location,
		UserAgent: a.UserAgent,

		Resource:    a.Resource,
		Action:      a.Action,
		Status:      string(a.Status),
		Description: a.Description,
		Metadata:    map[string]any(a.Metadata),
	}
}

func AuditLogsToDTOs(logs []models.AuditLog) []dtos.AuditLogDTO {
	return utils.Map(logs, AuditLogToDTO)
}
