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
	"github.com/l3montree-dev/vulify/utils"
)

func RemediationCreateRequestToModel(r dtos.RemediationCreateRequest, now time.Time) models.VulnerabilityRemediation {
	remediation := models.VulnerabilityRemediation{
		VulnerabilityName: r.VulnerabilityName,
		VulnerabilityCode: r.VulnerabilityCode,
		Category:          r.Category,
		Severity:          models.SeverityInfo,
		Description:       r.Description,

		Steps: RemediationStepRequestsToModels(r.Steps),

		Source:       models.RemediationSourceAIGenerated,
		LastModified: now,
	}

	if r.Severity != "" {
		remediation.Severity = models.Severity(r.Severity)
	}
	if r.Source != "" {
		remediation.Source = models.RemediationSource(r.Source)
	}

	return remediation
}

// RemediationStepRequestsToModels numbers the steps 1..n in request
// order. Clients never send explicit step numbers.
func RemediationStepRequestsToModels(steps []dtos.RemediationStepRequest) []models.RemediationStep {
	res := make([]models.RemediationStep, 0, len(steps))
	for i, s := range steps {
		res = append(res, models.RemediationStep{
			StepNumber:  i + 1,
			Title:       s.Title,
			Description: s.Description,
		})
	}
	return res
}

func ApplyRemediationPatchRequestToModel(p dtos.RemediationPatchRequest, remediation *models.VulnerabilityRemediation) bool {
	updated := false

	if p.VulnerabilityName != nil {
		updated = true
		remediation.VulnerabilityName = *p.VulnerabilityName
	}

	if p.VulnerabilityCode != nil {
		updated = true
		remediation.VulnerabilityCode = *p.VulnerabilityCode
	}

	if p.Category != nil {
		updated = true
		remediation.Category = *p.Category
	}

	if p.Severity != nil {
		updated = true
		remediation.Severity = models.Severity(*p.Severity)
	}

	if p.Description != nil {
		updated = true
		remediation.Description = *p.Description
	}

	if p.Steps != nil {
		updated = true
		remediation.Steps = RemediationStepRequestsToModels(*p.Steps)
	}

	return updated
}

func RemediationStepToDTO(s models.RemediationStep) dtos.RemediationStepDTO {
	return dtos.RemediationStepDTO{
		ID:          s.ID,
		StepNumber:  s.StepNumber,
		Title:       s.Title,
		Description: s.Description,
	}
}

func RemediationToDTO(r models.VulnerabilityRemediation) dtos.RemediationDTO {
	return dtos.RemediationDTO{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,

		VulnerabilityName: r.VulnerabilityName,
		VulnerabilityCode: r.VulnerabilityCode,
		Category:          r.Category,
		Severity:          string(r.Severity),
		Description:       r.Description,

		Steps: utils.Map(r.Steps, RemediationStepToDTO),

		ThumbsUp:   r.ThumbsUp,
		ThumbsDown: r.ThumbsDown,

		Source:       string(r.Source),
		LastModified: r.LastModified,
	}
}

func RemediationsToDTOs(remediations []models.VulnerabilityRemediation) []dtos.RemediationDTO {
	return utils.Map(remediations, RemediationToDTO)
}
