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
	"time"

	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
)

// LongRunningThreshold marks scans that kept running for more than a
// day as stuck on the diagnostics page.
const LongRunningThreshold = 24 * time.Hour

func ScanCreateRequestToModel(s dtos.ScanCreateRequest) models.Scan {
	return models.Scan{
		CustomerID: s.CustomerID,
		ScanName:   s.ScanName,
		ScanType:   s.ScanType,

		TargetsCount: s.TargetsCount,

		NodeName:     s.NodeName,
		NodeLocation: s.NodeLocation,
		NodeIP:       s.NodeIP,
	}
}

func ApplyScanPatchRequestToModel(p dtos.ScanPatchRequest, scan *models.Scan) bool {
	updated := false

	if p.Status != nil {
		updated = true
		scan.Status = models.ScanStatus(*p.Status)
		if scan.Status == models.ScanStatusCompleted && scan.CompletedAt == nil {
			now := time.Now()
			scan.CompletedAt = &now
			scan.Progress = 100
		}
	}

	if p.Progress != nil {
		updated = true
		scan.Progress = *p.Progress
	}

	if p.VulnerabilitiesFound != nil {
		updated = true
		scan.VulnerabilitiesFound = *p.VulnerabilitiesFound
	}

	if p.TargetsCount != nil {
		updated = true
		scan.TargetsCount = *p.TargetsCount
	}

	return updated
}

func ScanToDTO(s models.Scan, now time.Time) dtos.ScanDTO {
	return dtos.ScanDTO{
		ID:         s.ID,
		CreatedAt:  s.CreatedAt,
		CustomerID: s.CustomerID,

		ScanName: s.ScanName,
		ScanType: s.ScanType,
		Status:   string(s.Status),

		Progress:    s.Progress,
		StartedAt:   s.StartedAt,
		CompletedAt: s.CompletedAt,

		TargetsCount:         s.TargetsCount,
		VulnerabilitiesFound: s.VulnerabilitiesFound,

		NodeName:     s.NodeName,
		NodeLocation: s.NodeLocation,
		NodeIP:       s.NodeIP,

		LongRunning: s.IsLongRunning(now, LongRunningThreshold),
	}
}

func ScansToDTOs(scans []models.Scan, now time.Time) []dtos.ScanDTO {
	res := make([]dtos.ScanDTO, 0, len(scans))
	for _, s := range scans {
		res = append(res, ScanToDTO(s, now))
	}
	return res
}
