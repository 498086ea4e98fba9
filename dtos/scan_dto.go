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

type ScanCreateRequest struct {
	CustomerID uuid.UUID `json:"customerId" validate:"required"`
	ScanName   string    `json:"scanName" validate:"required"`
	ScanType   string    `json:"scanType"`

	TargetsCount int `json:"targetsCount" validate:"gte=0"`

	NodeName     string `json:"nodeName"`
	NodeLocation string `json:"nodeLocation"`
	NodeIP       string `json:"nodeIp"`
}

type ScanPatchRequest struct {
	Status               *string `json:"status" validate:"omitempty,oneof=queued running completed failed"`
	Progress             *int    `json:"progress" validate:"omitempty,gte=0,lte=100"`
	VulnerabilitiesFound *int    `json:"vulnerabilitiesFound" validate:"omitempty,gte=0"`
	TargetsCount         *int    `json:"targetsCount" validate:"omitempty,gte=0"`
}

type ScanDTO struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	CustomerID uuid.UUID `json:"customerId"`

	ScanName string `json:"scanName"`
	ScanType string `json:"scanType"`
	Status   string `json:"status"`

	Progress    int        `json:"progress"`
	StartedAt   *time.Time `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"`

	TargetsCount         int `json:"targetsCount"`
	VulnerabilitiesFound int `json:"vulnerabilitiesFound"`

	NodeName     string `json:"nodeName"`
	NodeLocation string `json:"nodeLocation"`
	NodeIP       string `json:"nodeIp"`

	LongRunning bool `json:"longRunning"`
}

type ScanDetailsDTO struct {
	ScanDTO
	Results []ScanResultDTO `json:"results"`
}
