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

package repositories

import (
	"github.com/l3montree-dev/vulify/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		fx.Annotate(NewCustomerRepository, fx.As(new(shared.CustomerRepository))),
		fx.Annotate(NewCustomerUserRepository, fx.As(new(shared.CustomerUserRepository))),
		fx.Annotate(NewEmailCommunicationRepository, fx.As(new(shared.EmailCommunicationRepository))),
		fx.Annotate(NewScanRepository, fx.As(new(shared.ScanRepository))),
		fx.Annotate(NewScanResultRepository, fx.As(new(shared.ScanResultRepository))),
		fx.Annotate(NewVulnerabilityTemplateRepository, fx.As(new(shared.VulnerabilityTemplateRepository))),
		fx.Annotate(NewVulnerabilityRemediationRepository, fx.As(new(shared.VulnerabilityRemediationRepository))),
		fx.Annotate(NewAuditLogRepository, fx.As(new(shared.AuditLogRepository))),
		fx.Annotate(NewUserRepository, fx.As(new(shared.UserRepository))),
	),
)
