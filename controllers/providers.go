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

package controllers

import (
	"os"

	"github.com/l3montree-dev/vulify/shared"
	"go.uber.org/fx"
)

// Module provides all HTTP controller constructors
var Module = fx.Options(
	// Customer management
	fx.Provide(NewCustomerController),
	fx.Provide(NewCustomerUserController),
	fx.Provide(NewEmailController),

	// Scanning
	fx.Provide(NewScanController),
	fx.Provide(NewScanResultController),

	// Knowledge base
	fx.Provide(NewVulnerabilityTemplateController),
	fx.Provide(NewVulnerabilityRemediationController),

	// Security & statistics
	fx.Provide(NewAuditLogController),
	fx.Provide(NewStatisticsController),

	// Sessions & fixtures
	fx.Provide(func(userRepository shared.UserRepository, auditRecorder shared.AuditRecorder) *SessionController {
		return NewSessionController(userRepository, auditRecorder, os.Getenv("SESSION_SECRET"))
	}),
	fx.Provide(NewSampleDataController),
)
