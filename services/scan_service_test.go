// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestAttachResults(t *testing.T) {
	scanID := uuid.New()
	customerID := uuid.New()

	newScan := func() models.Scan {
		return models.Scan{Model: models.Model{ID: scanID}, CustomerID: customerID, VulnerabilitiesFound: 3}
	}

	t.Run("should store results and counters in one transaction", func(t *testing.T) {
		scanRepository := mocks.NewScanRepository(t)
		scanResultRepository := mocks.NewScanResultRepository(t)
		customerRepository := mocks.NewCustomerRepository(t)

		scanRepository.On("Transaction", mock.Anything).Return(func(fn func(tx *gorm.DB) error) error {
			return fn(nil)
		})
		scanResultRepository.On("CreateBatch", mock.Anything, mock.MatchedBy(func(results []models.ScanResult) bool {
			return len(results) == 2 && results[0].ScanID == scanID
		})).Return(nil)
		scanRepository.On("Save", mock.Anything, mock.MatchedBy(func(scan *models.Scan) bool {
			return scan.VulnerabilitiesFound == 5
		})).Return(nil)
		customerRepository.On("Read", customerID).Return(models.Customer{
			Model:                   models.Model{ID: customerID},
			VulnerabilitiesCount:    10,
			CriticalVulnerabilities: 1,
		}, nil)
		customerRepository.On("Save", mock.Anything, mock.MatchedBy(func(customer *models.Customer) bool {
			return customer.VulnerabilitiesCount == 12 && customer.CriticalVulnerabilities == 2
		})).Return(nil)

		h := NewScanService(scanRepository, scanResultRepository, customerRepository)
		err := h.AttachResults(newScan(), []models.ScanResult{
			{VulnerabilityName: "SQL Injection", Severity: models.SeverityCritical},
			{VulnerabilityName: "Missing Security Header", Severity: models.SeverityLow},
		})

		assert.NoError(t, err)
	})

	t.Run("should not touch counters when storing results fails", func(t *testing.T) {
		scanRepository := mocks.NewScanRepository(t)
		scanResultRepository := mocks.NewScanResultRepository(t)
		customerRepository := mocks.NewCustomerRepository(t)

		scanRepository.On("Transaction", mock.Anything).Return(func(fn func(tx *gorm.DB) error) error {
			return fn(nil)
		})
		scanResultRepository.On("CreateBatch", mock.Anything, mock.Anything).Return(assert.AnError)

		h := NewScanService(scanRepository, scanResultRepository, customerRepository)
		err := h.AttachResults(newScan(), []models.ScanResult{{VulnerabilityName: "Cross-Site Scripting"}})

		assert.Error(t, err)
		scanRepository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		customerRepository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should do nothing for an empty batch", func(t *testing.T) {
		h := NewScanService(mocks.NewScanRepository(t), mocks.NewScanResultRepository(t), mocks.NewCustomerRepository(t))

		assert.NoError(t, h.AttachResults(newScan(), nil))
	})
}
