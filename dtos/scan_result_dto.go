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

type ScanResultCreateRequest struct {
	VulnerabilityName string `json:"vulnerabilityName" validate:"required"`
	VulnerabilityCode string `json:"vulnerabilityCode"`
	Severity          string `json:"severity" validate:"omitempty,oneof=critical high medium low info"`

	Target string `json:"target"`
	Port   string `json:"port"`

	Description    string  `json:"description"`
	Evidence       string  `json:"evidence"`
	Recommendation string  `json:"recommendation"`
	CVSSScore      float64 `json:"cvssScore" validate:"gte=0,lte=10"`
}

type ScanResultPatchRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=new remediated false_positive"`
}

type ScanResultDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	ScanID    uuid.UUID `json:"scanId"`

	VulnerabilityName string `json:"vulnerabilityName"`
	VulnerabilityCode string `json:"vulnerabilityCode"`
	Severity          string `json:"severity"`

	Target string `json:"target"`
	Port   string `json:"port"`

	Description    string  `json:"description"`
	Evidence       string  `json:"evidence"`
	Recommendation string  `json:"recommendation"`
	CVSSScore      float64 `json:"cvssScore"`

	Status string `json:"status"`
}
