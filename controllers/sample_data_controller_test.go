// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package controllers

import (
	"testing"

	"github.com/l3montree-dev/vulify/mocks"
	"github.com/l3montree-dev/vulify/services"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSampleDataSeedErrors(t *testing.T) {
	t.Run("should pass the service error through unchanged", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("CreateBatch", mock.Anything, mock.Anything).Return(assert.AnError)

		sampleDataService := services.NewSampleDataService(
			customerRepository,
			mocks.NewCustomerUserRepository(t),
			mocks.NewEmailCommunicationRepository(t),
			mocks.NewScanRepository(t),
			mocks.NewScanResultRepository(t),
			mocks.NewVulnerabilityTemplateRepository(t),
			mocks.NewVulnerabilityRemediationRepository(t),
			mocks.NewAuditLogRepository(t),
			mocks.NewUserRepository(t),
		)
		h := NewSampleDataController(sampleDataService)

		ctx, _ := newJSONContext("POST", "/sample-data/customers/", "")
		err := h.Customers(ctx)

		var httpError *echo.HTTPError
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 500, httpError.Code)
		assert.Equal(t, "could not seed customers", httpError.Message)
		assert.Equal(t, assert.AnError, httpError.Internal)
	})
}
