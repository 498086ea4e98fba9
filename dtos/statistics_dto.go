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

// Stats DTOs aggregate over the unfiltered collections. List filters
// never change the numbers shown next to them.

type CommercialStatsDTO struct {
	MonthlyRevenue          float64 `json:"monthlyRevenue"`
	MonthlyRevenueFormatted string  `json:"monthlyRevenueFormatted"`
	ActiveContracts         int     `json:"activeContracts"`
	MissedPaymentsCount     int     `json:"missedPaymentsCount"`
	TotalARR                float64 `json:"totalArr"`
}

type DiagnosticsStatsDTO struct {
	TotalScans       int            `json:"totalScans"`
	CountsByStatus   map[string]int `json:"countsByStatus"`
	LongRunningScans []ScanDTO      `json:"longRunningScans"`
}

type TemplateStatsDTO struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	NewLast7Days int `json:"newLast7Days"`
}

type RemediationStatsDTO struct {
	Total       int `json:"total"`
	AIGenerated int `json:"aiGenerated"`
	TeamEdited  int `json:"teamEdited"`
	Critical    int `json:"critical"`
}

type AuditLogStatsDTO struct {
	TotalEvents  int `json:"totalEvents"`
	Critical     int `json:"critical"`
	FailedLogins int `json:"failedLogins"`
	Blocked      int `json:"blocked"`
}

type ActivityBucketDTO struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type AnalyticsDTO struct {
	TotalCustomers     int `json:"totalCustomers"`
	NewCustomers24h    int `json:"newCustomers24h"`
	NewCustomers7Days  int `json:"newCustomers7Days"`
	NewCustomers30Days int `json:"newCustomers30Days"`

	TotalScans        int            `json:"totalScans"`
	ScansByStatus     map[string]int `json:"scansByStatus"`
	AvgTargetsPerScan float64        `json:"avgTargetsPerScan"`

	TotalVulnerabilities    int `json:"totalVulnerabilities"`
	CriticalVulnerabilities int `json:"criticalVulnerabilities"`
	ResolvedVulnerabilities int `json:"resolvedVulnerabilities"`
	// Percent of total that is resolved, 0 when there are none.
	ResolutionRate int `json:"resolutionRate"`

	TotalRevenue          float64 `json:"totalRevenue"`
	TotalRevenueThousands int     `json:"totalRevenueThousands"`
	MonthlyRecurring      float64 `json:"monthlyRecurring"`

	// Professional and Pro are reported as one bucket.
	PlanDistribution map[string]int `json:"planDistribution"`

	CustomerActivity []ActivityBucketDTO `json:"customerActivity"`
	ScanActivity     []ActivityBucketDTO `json:"scanActivity"`
}

type InfrastructureNodeDTO struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
}

type OverviewStatsDTO struct {
	TotalCustomers  int `json:"totalCustomers"`
	ActiveCustomers int `json:"activeCustomers"`
	RunningScans    int `json:"runningScans"`
	TotalScans      int `json:"totalScans"`

	TotalVulnerabilities    int `json:"totalVulnerabilities"`
	CriticalVulnerabilities int `json:"criticalVulnerabilities"`
	ResolutionRate          int `json:"resolutionRate"`

	Infrastructure []InfrastructureNodeDTO `json:"infrastructure"`
}
