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

func ScanResultCreateRequestToModel(scanID uuid.UUID, r dtos.ScanResultCreateRequest) models.ScanResult {
	result := models.ScanResult{
		ScanID: scanID,

		VulnerabilityName: r.VulnerabilityName,
		VulnerabilityCode: r.VulnerabilityCode,
		Severity:          models.SeverityInfo,

		Target: r.Target,
		Port:   r.Port,

		Description:    r.Description,
		Evidence:       r.Evidence,
		Recommendation: r.Recommendation,
		CVSSScore:      r.CVSSScore,

		Status: models.ScanResultStatusNew,
	}

	if r.Severity != "" {
		result.Severity = models.Severity(r.Severity)
	}

	return result
}

func ScanResultToDTO(r models.ScanResult) dtos.ScanResultDTO {
	return dtos.ScanResultDTO{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		ScanID:    r.ScanID,

		VulnerabilityName: r.VulnerabilityName,
		VulnerabilityCode: r.VulnerabilityCode,
		Severity:          string(r.Severity),

		Target: r.Target,
		Port:   r.Port,

		Description:    r.Description,
		Evidence:       r.Evidence,
		Recommendation: r.Recommendation,
		CVSSScore:      r.CVSSScore,

		Status: string(r.Status),
	}
}

func ScanResultsToDTOs(results []models.ScanResult) []dtos.ScanResultDTO {
	return utils.Map(results, ScanResultToDTO)
}
