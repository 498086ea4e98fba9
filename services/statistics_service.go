// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"time"

	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/insights"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/l3montree-dev/vulify/transformer"
	"github.com/l3montree-dev/vulify/utils"
	"github.com/labstack/echo/v4"
)

// scan nodes shown on the overview page. There is no live telemetry
// source for these, the list is deliberately static.
var infrastructureNodes = []dtos.InfrastructureNodeDTO{
	{Name: "scan-node-us-east-1", Location: "US-East (Virginia)", Status: "online", Uptime: "99.98%"},
	{Name: "scan-node-eu-west-1", Location: "EU-West (Ireland)", Status: "online", Uptime: "99.95%"},
	{Name: "scan-node-us-west-2", Location: "US-West (Oregon)", Status: "online", Uptime: "99.97%"},
	{Name: "scan-node-ap-southeast-1", Location: "Asia Pacific (Singapore)", Status: "online", Uptime: "99.92%"},
	{Name: "scan-node-eu-central-1", Location: "EU-Central (Frankfurt)", Status: "online", Uptime: "99.99%"},
}

// StatisticsService computes the page-level aggregates. Every method
// aggregates the unfiltered collection, list filters never influence
// the numbers rendered next to them.
type StatisticsService struct {
	customerRepository    shared.CustomerRepository
	scanRepository        shared.ScanRepository
	templateRepository    shared.VulnerabilityTemplateRepository
	remediationRepository shared.VulnerabilityRemediationRepository
	auditLogRepository    shared.AuditLogRepository
}

func NewStatisticsService(
	customerRepository shared.CustomerRepository,
	scanRepository shared.ScanRepository,
	templateRepository shared.VulnerabilityTemplateRepository,
	remediationRepository shared.VulnerabilityRemediationRepository,
	auditLogRepository shared.AuditLogRepository,
) *StatisticsService {
	return &StatisticsService{
		customerRepository:    customerRepository,
		scanRepository:        scanRepository,
		templateRepository:    templateRepository,
		remediationRepository: remediationRepository,
		auditLogRepository:    auditLogRepository,
	}
}

func (s *StatisticsService) Commercial() (dtos.CommercialStatsDTO, error) {
	customers, err := s.customerRepository.ListOrdered()
	if err != nil {
		return dtos.CommercialStatsDTO{}, echo.NewHTTPError(500, "could not load customers").WithInternal(err)
	}

	totalARR := insights.SumBy(customers, func(c models.Customer) float64 { return c.ContractValue })
	monthly := totalARR / 12

	return dtos.CommercialStatsDTO{
		MonthlyRevenue:          monthly,
		MonthlyRevenueFormatted: "$" + insights.FormatCurrency(monthly),
		ActiveContracts: insights.CountWhere(customers, func(c models.Customer) bool {
			return c.Status == models.CustomerStatusActive
		}),
		MissedPaymentsCount: insights.CountWhere(customers, func(c models.Customer) bool {
			return c.MissedPayment
		}),
		TotalARR: totalARR,
	}, nil
}

func (s *StatisticsService) Diagnostics(now time.Time) (dtos.DiagnosticsStatsDTO, error) {
	scans, err := s.scanRepository.ListOrdered()
	if err != nil {
		return dtos.DiagnosticsStatsDTO{}, echo.NewHTTPError(500, "could not load scans").WithInternal(err)
	}

	longRunning := utils.Filter(scans, func(scan models.Scan) bool {
		return scan.IsLongRunning(now, transformer.LongRunningThreshold)
	})

	return dtos.DiagnosticsStatsDTO{
		TotalScans: len(scans),
		CountsByStatus: insights.CountBy(scans, func(scan models.Scan) string {
			return string(scan.Status)
		}),
		LongRunningScans: transformer.ScansToDTOs(longRunning, now),
	}, nil
}

func (s *StatisticsService) Templates(now time.Time) (dtos.TemplateStatsDTO, error) {
	templates, err := s.templateRepository.ListOrdered()
	if err != nil {
		return dtos.TemplateStatsDTO{}, echo.NewHTTPError(500, "could not load vulnerability templates").WithInternal(err)
	}

	weekAgo := now.AddDate(0, 0, -7)
	return dtos.TemplateStatsDTO{
		Total: len(templates),
		Active: insights.CountWhere(templates, func(t models.VulnerabilityTemplate) bool {
			return t.Enabled
		}),
		NewLast7Days: insights.CountSince(templates, func(t models.VulnerabilityTemplate) *time.Time {
			return &t.CreatedAt
		}, weekAgo),
	}, nil
}

func (s *StatisticsService) Remediations() (dtos.RemediationStatsDTO, error) {
	remediations, err := s.remediationRepository.ListOrdered()
	if err != nil {
		return dtos.RemediationStatsDTO{}, echo.NewHTTPError(500, "could not load remediations").WithInternal(err)
	}

	return dtos.RemediationStatsDTO{
		Total: len(remediations),
		AIGenerated: insights.CountWhere(remediations, func(r models.VulnerabilityRemediation) bool {
			return r.Source == models.RemediationSourceAIGenerated
		}),
		TeamEdited: insights.CountWhere(remediations, func(r models.VulnerabilityRemediation) bool {
			return r.Source == models.RemediationSourceTeamEdited
		}),
		Critical: insights.CountWhere(remediations, func(r models.VulnerabilityRemediation) bool {
			return r.Severity == models.SeverityCritical
		}),
	}, nil
}

func (s *StatisticsService) AuditLogs() (dtos.AuditLogStatsDTO, error) {
	logs, err := s.auditLogRepository.ListOrdered()
	if err != nil {
		return dtos.AuditLogStatsDTO{}, echo.NewHTTPError(500, "could not load audit logs").WithInternal(err)
	}

	return dtos.AuditLogStatsDTO{
		TotalEvents: len(logs),
		Critical: insights.CountWhere(logs, func(l models.AuditLog) bool {
			return l.Severity == models.SeverityCritical
		}),
		FailedLogins: insights.CountWhere(logs, func(l models.AuditLog) bool {
			return l.EventType == models.EventTypeFailedLogin
		}),
		Blocked: insights.CountWhere(logs, func(l models.AuditLog) bool {
			return l.Status == models.AuditLogStatusBlocked
		}),
	}, nil
}

func (s *StatisticsService) Analytics(now time.Time) (dtos.AnalyticsDTO, error) {
	customers, err := s.customerRepository.ListOrdered()
	if err != nil {
		return dtos.AnalyticsDTO{}, echo.NewHTTPError(500, "could not load customers").WithInternal(err)
	}
	scans, err := s.scanRepository.ListOrdered()
	if err != nil {
		return dtos.AnalyticsDTO{}, echo.NewHTTPError(500, "could not load scans").WithInternal(err)
	}

	totalVulns := 0
	criticalVulns := 0
	resolvedVulns := 0
	for _, c := range customers {
		totalVulns += c.VulnerabilitiesCount
		criticalVulns += c.CriticalVulnerabilities
		resolvedVulns += c.ResolvedVulnerabilities
	}

	totalRevenue := insights.SumBy(customers, func(c models.Customer) float64 { return c.ContractValue })

	avgTargets := 0.
	if len(scans) > 0 {
		avgTargets = insights.SumBy(scans, func(s models.Scan) float64 { return float64(s.TargetsCount) }) / float64(len(scans))
	}

	createdAt := func(m models.Model) *time.Time { return &m.CreatedAt }

	return dtos.AnalyticsDTO{
		TotalCustomers: len(customers),
		NewCustomers24h: insights.CountSince(customers, func(c models.Customer) *time.Time {
			return createdAt(c.Model)
		}, now.Add(-24*time.Hour)),
		NewCustomers7Days: insights.CountSince(customers, func(c models.Customer) *time.Time {
			return createdAt(c.Model)
		}, now.AddDate(0, 0, -7)),
		NewCustomers30Days: insights.CountSince(customers, func(c models.Customer) *time.Time {
			return createdAt(c.Model)
		}, now.AddDate(0, 0, -30)),

		TotalScans: len(scans),
		ScansByStatus: insights.CountBy(scans, func(s models.Scan) string {
			return string(s.Status)
		}),
		AvgTargetsPerScan: avgTargets,

		TotalVulnerabilities:    totalVulns,
		CriticalVulnerabilities: criticalVulns,
		ResolvedVulnerabilities: resolvedVulns,
		ResolutionRate:          insights.Percent(resolvedVulns, totalVulns),

		TotalRevenue:          totalRevenue,
		TotalRevenueThousands: insights.RoundedThousands(totalRevenue),
		MonthlyRecurring:      totalRevenue / 12,

		PlanDistribution: planDistribution(customers),

		CustomerActivity: activityToDTOs(insights.ActivityBuckets(customers, func(c models.Customer) *time.Time {
			return createdAt(c.Model)
		}, now, 7)),
		ScanActivity: activityToDTOs(insights.ActivityBuckets(scans, func(s models.Scan) *time.Time {
			return createdAt(s.Model)
		}, now, 7)),
	}, nil
}

func (s *StatisticsService) Overview() (dtos.OverviewStatsDTO, error) {
	customers, err := s.customerRepository.ListOrdered()
	if err != nil {
		return dtos.OverviewStatsDTO{}, echo.NewHTTPError(500, "could not load customers").WithInternal(err)
	}
	scans, err := s.scanRepository.ListOrdered()
	if err != nil {
		return dtos.OverviewStatsDTO{}, echo.NewHTTPError(500, "could not load scans").WithInternal(err)
	}

	totalVulns := 0
	criticalVulns := 0
	resolvedVulns := 0
	for _, c := range customers {
		totalVulns += c.VulnerabilitiesCount
		criticalVulns += c.CriticalVulnerabilities
		resolvedVulns += c.ResolvedVulnerabilities
	}

	return dtos.OverviewStatsDTO{
		TotalCustomers: len(customers),
		ActiveCustomers: insights.CountWhere(customers, func(c models.Customer) bool {
			return c.Status == models.CustomerStatusActive
		}),
		RunningScans: insights.CountWhere(scans, func(s models.Scan) bool {
			return s.Status == models.ScanStatusRunning
		}),
		TotalScans: len(scans),

		TotalVulnerabilities:    totalVulns,
		CriticalVulnerabilities: criticalVulns,
		ResolutionRate:          insights.Percent(resolvedVulns, totalVulns),

		Infrastructure: infrastructureNodes,
	}, nil
}

// planDistribution merges Professional and Pro - they are the same
// tier under two historical names.
func planDistribution(customers []models.Customer) map[string]int {
	return insights.CountBy(customers, func(c models.Customer) string {
		if c.Plan == models.PlanPro {
			return string(models.PlanProfessional)
		}
		return string(c.Plan)
	})
}

func activityToDTOs(buckets []insights.Bucket) []dtos.ActivityBucketDTO {
	res := make([]dtos.ActivityBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		res = append(res, dtos.ActivityBucketDTO{Label: b.Label, Count: b.Count})
	}
	return res
}
