package services

import (
	"testing"
	"time"

	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/mocks"
	"github.com/stretchr/testify/assert"
)

func TestCommercialStats(t *testing.T) {
	t.Run("should compute ARR, active contracts and missed payments", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("ListOrdered").Return([]models.Customer{
			{CompanyName: "Acme Corp", Status: models.CustomerStatusActive, ContractValue: 24000},
			{CompanyName: "DataFlow Ltd", Status: models.CustomerStatusActive, ContractValue: 36000, MissedPayment: true},
		}, nil)

		h := NewStatisticsService(customerRepository, nil, nil, nil, nil)

		stats, err := h.Commercial()
		assert.NoError(t, err)
		assert.Equal(t, 60000., stats.TotalARR)
		assert.Equal(t, 5000., stats.MonthlyRevenue)
		assert.Equal(t, 2, stats.ActiveContracts)
		assert.Equal(t, 1, stats.MissedPaymentsCount)
	})

	t.Run("should report zeros for an empty collection", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("ListOrdered").Return([]models.Customer{}, nil)

		h := NewStatisticsService(customerRepository, nil, nil, nil, nil)

		stats, err := h.Commercial()
		assert.NoError(t, err)
		assert.Equal(t, 0., stats.TotalARR)
		assert.Equal(t, 0, stats.ActiveContracts)
	})
}

func TestDiagnosticsStats(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	twoDaysAgo := now.Add(-48 * time.Hour)
	twoHoursAgo := now.Add(-2 * time.Hour)

	t.Run("should flag scans running for more than a day", func(t *testing.T) {
		scanRepository := mocks.NewScanRepository(t)
		scanRepository.On("ListOrdered").Return([]models.Scan{
			{ScanName: "stuck", Status: models.ScanStatusRunning, StartedAt: &twoDaysAgo},
			{ScanName: "fresh", Status: models.ScanStatusRunning, StartedAt: &twoHoursAgo},
			{ScanName: "done", Status: models.ScanStatusCompleted, StartedAt: &twoDaysAgo},
		}, nil)

		h := NewStatisticsService(nil, scanRepository, nil, nil, nil)

		stats, err := h.Diagnostics(now)
		assert.NoError(t, err)
		assert.Equal(t, 3, stats.TotalScans)
		assert.Equal(t, 2, stats.CountsByStatus["running"])
		assert.Equal(t, 1, stats.CountsByStatus["completed"])
		assert.Len(t, stats.LongRunningScans, 1)
		assert.Equal(t, "stuck", stats.LongRunningScans[0].ScanName)
		assert.True(t, stats.LongRunningScans[0].LongRunning)
	})
}

func TestAuditLogStats(t *testing.T) {
	t.Run("should count failed logins and blocked events", func(t *testing.T) {
		auditLogRepository := mocks.NewAuditLogRepository(t)
		auditLogRepository.On("ListOrdered").Return([]models.AuditLog{
			{EventType: models.EventTypeFailedLogin, Severity: models.SeverityHigh, Status: models.AuditLogStatusFailed},
			{EventType: models.EventTypeFailedLogin, Severity: models.SeverityCritical, Status: models.AuditLogStatusBlocked},
			{EventType: models.EventTypeSuspiciousRequest, Severity: models.SeverityCritical, Status: models.AuditLogStatusBlocked},
			{EventType: models.EventTypeDataModification, Severity: models.SeverityMedium, Status: models.AuditLogStatusSuccess},
		}, nil)

		h := NewStatisticsService(nil, nil, nil, nil, auditLogRepository)

		stats, err := h.AuditLogs()
		assert.NoError(t, err)
		assert.Equal(t, 4, stats.TotalEvents)
		assert.Equal(t, 2, stats.Critical)
		assert.Equal(t, 2, stats.FailedLogins)
		assert.Equal(t, 2, stats.Blocked)
	})
}

func TestAnalyticsStats(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	customers := []models.Customer{
		{Plan: models.PlanProfessional, ContractValue: 24000, VulnerabilitiesCount: 10, ResolvedVulnerabilities: 5},
		{Plan: models.PlanPro, ContractValue: 12000, VulnerabilitiesCount: 10, CriticalVulnerabilities: 2},
		{Plan: models.PlanEnterprise, ContractValue: 48000},
	}
	for i := range customers {
		customers[i].CreatedAt = now.Add(-time.Duration(i*30) * time.Hour)
	}

	t.Run("should merge Professional and Pro plans", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("ListOrdered").Return(customers, nil)
		scanRepository := mocks.NewScanRepository(t)
		scanRepository.On("ListOrdered").Return([]models.Scan{}, nil)

		h := NewStatisticsService(customerRepository, scanRepository, nil, nil, nil)

		stats, err := h.Analytics(now)
		assert.NoError(t, err)
		assert.Equal(t, 2, stats.PlanDistribution["Professional"])
		assert.Equal(t, 1, stats.PlanDistribution["Enterprise"])
		assert.NotContains(t, stats.PlanDistribution, "Pro")
	})

	t.Run("should compute resolution rate and revenue", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("ListOrdered").Return(customers, nil)
		scanRepository := mocks.NewScanRepository(t)
		scanRepository.On("ListOrdered").Return([]models.Scan{
			{Status: models.ScanStatusRunning, TargetsCount: 100},
			{Status: models.ScanStatusCompleted, TargetsCount: 50},
		}, nil)

		h := NewStatisticsService(customerRepository, scanRepository, nil, nil, nil)

		stats, err := h.Analytics(now)
		assert.NoError(t, err)
		assert.Equal(t, 20, stats.TotalVulnerabilities)
		assert.Equal(t, 5, stats.ResolvedVulnerabilities)
		assert.Equal(t, 25, stats.ResolutionRate)
		assert.Equal(t, 84000., stats.TotalRevenue)
		assert.Equal(t, 84, stats.TotalRevenueThousands)
		assert.Equal(t, 7000., stats.MonthlyRecurring)
		assert.Equal(t, 75., stats.AvgTargetsPerScan)
		assert.Equal(t, 1, stats.ScansByStatus["running"])
	})

	t.Run("should bucket customer activity over the trailing week", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("ListOrdered").Return(customers, nil)
		scanRepository := mocks.NewScanRepository(t)
		scanRepository.On("ListOrdered").Return([]models.Scan{}, nil)

		h := NewStatisticsService(customerRepository, scanRepository, nil, nil, nil)

		stats, err := h.Analytics(now)
		assert.NoError(t, err)
		assert.Len(t, stats.CustomerActivity, 7)

		total := 0
		for _, bucket := range stats.CustomerActivity {
			total += bucket.Count
		}
		assert.Equal(t, 3, total)
	})
}

func TestOverviewStats(t *testing.T) {
	t.Run("should include the static infrastructure list", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("ListOrdered").Return([]models.Customer{}, nil)
		scanRepository := mocks.NewScanRepository(t)
		scanRepository.On("ListOrdered").Return([]models.Scan{}, nil)

		h := NewStatisticsService(customerRepository, scanRepository, nil, nil, nil)

		stats, err := h.Overview()
		assert.NoError(t, err)
		assert.NotEmpty(t, stats.Infrastructure)
		assert.Equal(t, 0, stats.ResolutionRate)
	})
}
