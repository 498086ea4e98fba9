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

type RemediationStepRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type RemediationCreateRequest struct {
	VulnerabilityName string `json:"vulnerabilityName" validate:"required"`
	VulnerabilityCode string `json:"vulnerabilityCode"`
	Category          string `json:"category"`
	Severity          string `json:"severity" validate:"omitempty,oneof=critical high medium low info"`
	Description       string `json:"description"`

	Steps []RemediationStepRequest `json:"steps" validate:"dive"`

	Source string `json:"source" validate:"omitempty,oneof=ai_generated team_edited"`
}

type RemediationPatchRequest struct {
	VulnerabilityName *string `json:"vulnerabilityName"`
	VulnerabilityCode *string `json:"vulnerabilityCode"`
	Category          *string `json:"category"`
	Severity          *string `json:"severity" validate:"omitempty,oneof=critical high medium low info"`
	Description       *string `json:"description"`

	// replaces the whole ordered sequence when present
	Steps *[]RemediationStepRequest `json:"steps" validate:"omitempty,dive"`
}

type RemediationVoteRequest struct {
	Vote string `json:"vote" validate:"required,oneof=up down"`
}

type RemediationStepDTO struct {
	ID          uuid.UUID `json:"id"`
	StepNumber  int       `json:"stepNumber"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

type RemediationDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	VulnerabilityName string `json:"vulnerabilityName"`
	VulnerabilityCode string `json:"vulnerabilityCode"`
	Category          string `json:"category"`
	Severity          string `json:"severity"`
	Description       string `json:"description"`

	Steps []RemediationStepDTO `json:"steps"`

	ThumbsUp   int `json:"thumbsUp"`
	ThumbsDown int `json:"thumbsDown"`

	Source       string    `json:"source"`
	LastModified time.Time `json:"lastModified"`
}
