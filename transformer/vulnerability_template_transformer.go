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
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/utils"
)

func VulnerabilityTemplateCreateRequestToModel(t dtos.VulnerabilityTemplateCreateRequest) models.VulnerabilityTemplate {
	template := models.VulnerabilityTemplate{
		TemplateName:      t.TemplateName,
		VulnerabilityType: t.VulnerabilityType,
		Severity:          models.SeverityInfo,
		DetectionMethod:   t.DetectionMethod,
		ScanTargets:       utils.OrEmpty(t.ScanTargets),

		DetectionPattern: t.DetectionPattern,
		TestPayload:      t.TestPayload,
		Description:      t.Description,

		Enabled:       utils.OrDefault(t.Enabled, true),
		Tags:          utils.OrEmpty(t.Tags),
		CVEReferences: utils.OrEmpty(t.CVEReferences),
	}

	if t.Severity != "" {
		template.Severity = models.Severity(t.Severity)
	}

	return template
}

func ApplyVulnerabilityTemplatePatchRequestToModel(p dtos.VulnerabilityTemplatePatchRequest, template *models.VulnerabilityTemplate) bool {
	updated := false

	if p.TemplateName != nil {
		updated = true
		template.TemplateName = *p.TemplateName
	}

	if p.VulnerabilityType != nil {
		updated = true
		template.VulnerabilityType = *p.VulnerabilityType
	}

	if p.Severity != nil {
		updated = true
		template.Severity = models.Severity(*p.Severity)
	}

	if p.DetectionMethod != nil {
		updated = true
		template.DetectionMethod = *p.DetectionMethod
	}

	if p.ScanTargets != nil {
		updated = true
		template.ScanTargets = *p.ScanTargets
	}

	if p.DetectionPattern != nil {
		updated = true
		template.DetectionPattern = *p.DetectionPattern
	}

	if p.TestPayload != nil {
		updated = true
		template.TestPayload = *p.TestPayload
	}

	if p.Description != nil {
		updated = true
		template.Description = *p.Description
	}

	if p.Enabled != nil {
		updated = true
		template.Enabled = *p.Enabled
	}

	if p.Tags != nil {
		updated = true
		template.Tags = *p.Tags
	}

	if p.CVEReferences != nil {
		updated = true
		template.CVEReferences = *p.CVEReferences
	}

	return updated
}

func VulnerabilityTemplateToDTO(t models.VulnerabilityTemplate) dtos.VulnerabilityTemplateDTO {
	return dtos.VulnerabilityTemplateDTO{
		ID:        t.ID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,

		TemplateName:      t.TemplateName,
		VulnerabilityType: t.VulnerabilityType,
		Severity:          string(t.Severity),
		DetectionMethod:   t.DetectionMethod,
		ScanTargets:       utils.OrEmpty(t.ScanTargets),

		DetectionPattern: t.DetectionPattern,
		TestPayload:      t.TestPayload,
		Description:      t.Description,

		Enabled:       t.Enabled,
		Tags:          utils.OrEmpty(t.Tags),
		CVEReferences: utils.OrEmpty(t.CVEReferences),
	}
}

func VulnerabilityTemplatesToDTOs(templates []models.VulnerabilityTemplate) []dtos.VulnerabilityTemplateDTO {
	return utils.Map(templates, VulnerabilityTemplateToDTO)
}
