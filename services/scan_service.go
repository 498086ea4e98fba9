// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"errors"
	"time"

	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/insights"
	"github.com/l3montree-dev/vulify/monitoring"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ScanService struct {
	scanRepository       shared.ScanRepository
	scanResultRepository shared.ScanResultRepository
	customerRepository   shared.CustomerRepository
}

func NewScanService(scanRepository shared.ScanRepository, scanResultRepository shared.ScanResultRepository, customerRepository shared.CustomerRepository) *ScanService {
	return &ScanService{
		scanRepository:       scanRepository,
		scanResultRepository: scanResultRepository,
		customerRepository:   customerRepository,
	}
}

// LaunchScan starts the scan immediately. There is no queue in front of
// the scan nodes, a launched scan is a running scan.
func (s *ScanService) LaunchScan(scan *models.Scan) error {
	if _, err := s.customerRepository.Read(scan.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "customer not found").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not read customer").WithInternal(err)
	}

	now := time.Now()
	scan.Status = models.ScanStatusRunning
	scan.Progress = 0
	scan.StartedAt = &now
	scan.CompletedAt = nil

	if err := s.scanRepository.Create(nil, scan); err != nil {
		return echo.NewHTTPError(500, "could not launch scan").WithInternal(err)
	}

	monitoring.ScanLaunches.Inc()
	return nil
}

// AttachResults stores findings for a scan and keeps the scan's and the
// customer's vulnerability counters in sync with the stored results.
func (s *ScanService) AttachResults(scan models.Scan, results []models.ScanResult) error {
	if len(results) == 0 {
		return nil
	}

	for i := range results {
		results[i].ScanID = scan.ID
	}
	critical := insights.CountWhere(results, func(r models.ScanResult) bool {
		return r.Severity == models.SeverityCritical
	})

	// results and counters move together or not at all
	err := s.scanRepository.Transaction(func(tx shared.DB) error {
		if err := s.scanResultRepository.CreateBatch(tx, results); err != nil {
			return err
		}

		scan.VulnerabilitiesFound += len(results)
		if err := s.scanRepository.Save(tx, &scan); err != nil {
			return err
		}

		customer, err := s.customerRepository.Read(scan.CustomerID)
		if err != nil {
			return err
		}
		customer.VulnerabilitiesCount += len(results)
		customer.CriticalVulnerabilities += critical
		customer.Normalize()
		return s.customerRepository.Save(tx, &customer)
	})
	if err != nil {
		return echo.NewHTTPError(500, "could not store scan results").WithInternal(err)
	}

	monitoring.ScanResultIngests.Add(float64(len(results)))
	return nil
}
