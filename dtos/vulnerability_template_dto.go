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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type VulnerabilityTemplateCreateRequest struct {
	TemplateName      string   `json:"templateName" validate:"required"`
	VulnerabilityType string   `json:"vulnerabilityType" validate:"required"`
	Severity          string   `json:"severity" validate:"omitempty,oneof=critical high medium low info"`
	DetectionMethod   string   `json:"detectionMethod"`
	ScanTargets       []string `json:"scanTargets"`

	DetectionPattern string `json:"detectionPattern"`
	TestPayload      string `json:"testPayload"`
	Description      string `json:"description"`

	Enabled       *bool    `json:"enabled"`
	Tags          []string `json:"tags"`
	CVEReferences []string `json:"cveReferences"`
}

type VulnerabilityTemplatePatchRequest struct {
	TemplateName      *string   `json:"templateName"`
	VulnerabilityType *string   `json:"vulnerabilityType"`
	Severity          *string   `json:"severity" validate:"omitempty,oneof=critical high medium low info"`
	DetectionMethod   *string   `json:"detectionMethod"`
	ScanTargets       *[]string `json:"scanTargets"`

	DetectionPattern *string `json:"detectionPattern"`
	TestPayload      *string `json:"testPayload"`
	Description      *string `json:"description"`

	Enabled       *bool     `json:"enabled"`
	Tags          *[]string `json:"tags"`
	CVEReferences *[]string `json:"cveReferences"`
}

type VulnerabilityTemplateDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TemplateName      string   `json:"templateName"`
	VulnerabilityType string   `json:"vulnerabilityType"`
	Severity          string   `json:"severity"`
	DetectionMethod   string   `json:"detectionMethod"`
	ScanTargets       []string `json:"scanTargets"`

	DetectionPattern string `json:"detectionPattern"`
	TestPayload      string `json:"testPayload"`
	Description      string `json:"description"`

	Enabled       bool     `json:"enabled"`
	Tags          []string `json:"tags"`
	CVEReferences []string `json:"cveReferences"`
}
