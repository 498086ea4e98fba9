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

type AuditLogCreateRequest struct {
	EventType string `json:"eventType" validate:"required,oneof=failed_login suspicious_request unauthorized_access data_modification permission_change"`
	Severity  string `json:"severity" validate:"omitempty,oneof=critical high medium low info"`

	UserEmail string `json:"userEmail" validate:"omitempty,email"`
	IPAddress string `json:"ipAddress"`
	Location  string `json:"location"`
	UserAgent string `json:"userAgent"`

	Resource    string         `json:"resource"`
	Action      string         `json:"action"`
	Status      string         `json:"status" validate:"omitempty,oneof=success failed blocked"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}

type AuditLogDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	EventType string `json:"eventType"`
	Severity  string `json:"severity"`

	UserEmail string `json:"userEmail"`
	IPAddress string `json:"ipAddress"`
	Location  string `json:"location"`
	UserAgent string `json:"userAgent"`

	Resource    string         `json:"resource"`
	Action      string         `json:"action"`
	Status      string         `json:"status"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}
