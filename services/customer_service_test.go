package services

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/mocks"
	"github.com/l3montree-dev/vulify/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateCustomer(t *testing.T) {
	t.Run("should fail if the repository cannot create the customer", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("something went wrong"))

		h := NewCustomerService(customerRepository)

		err := h.CreateCustomer(&models.Customer{CompanyName: "Acme Corp", Slug: "acme-corp"})
		assert.Error(t, err)
		assert.Equal(t, 500, err.(*echo.HTTPError).Code)
	})

	t.Run("should return 409 on a duplicate slug", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})

		h := NewCustomerService(customerRepository)

		err := h.CreateCustomer(&models.Customer{CompanyName: "Acme Corp", Slug: "acme-corp"})
		assert.Error(t, err)
		assert.Equal(t, 409, err.(*echo.HTTPError).Code)
	})

	t.Run("should refuse an empty company name", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)

		h := NewCustomerService(customerRepository)

		err := h.CreateCustomer(&models.Customer{})
		assert.Error(t, err)
		assert.Equal(t, 409, err.(*echo.HTTPError).Code)
	})

	t.Run("should succeed if everything goes right", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		h := NewCustomerService(customerRepository)

		err := h.CreateCustomer(&models.Customer{CompanyName: "Acme Corp", Slug: "acme-corp"})
		assert.NoError(t, err)
	})
}

func TestUpdateLicenses(t *testing.T) {
	t.Run("should reject unknown license keys", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)

		h := NewCustomerService(customerRepository)

		err := h.UpdateLicenses(&models.Customer{}, map[string]int{"quantum_scan": 1})
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should reject negative seat counts", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)

		h := NewCustomerService(customerRepository)

		err := h.UpdateLicenses(&models.Customer{}, map[string]int{"web_app_scan": -1})
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should replace the license map", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		customer := models.Customer{}
		h := NewCustomerService(customerRepository)

		err := h.UpdateLicenses(&customer, map[string]int{"web_app_scan": 3, "cloud_assets": 1})
		assert.NoError(t, err)
		assert.Equal(t, 3, customer.Licenses["web_app_scan"])
		assert.Equal(t, 1, customer.Licenses["cloud_assets"])
	})
}

func TestUpdatePlan(t *testing.T) {
	t.Run("should mark the customer as trial", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		customer := models.Customer{Status: models.CustomerStatusActive}
		h := NewCustomerService(customerRepository)

		err := h.UpdatePlan(&customer, models.PlanEnterprise, true, utils.Ptr("2026-04-01"))
		assert.NoError(t, err)
		assert.Equal(t, models.CustomerStatusTrial, customer.Status)
		assert.Equal(t, models.PlanEnterprise, customer.Plan)
		assert.NotNil(t, customer.TrialEndDate)
	})

	t.Run("should clear the trial state when converting", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		end := utils.Ptr("2026-04-01")
		customer := models.Customer{Status: models.CustomerStatusTrial, IsTrial: true}
		h := NewCustomerService(customerRepository)

		assert.NoError(t, h.UpdatePlan(&customer, models.PlanEnterprise, true, end))
		assert.NoError(t, h.UpdatePlan(&customer, models.PlanEnterprise, false, nil))
		assert.Equal(t, models.CustomerStatusActive, customer.Status)
		assert.Nil(t, customer.TrialEndDate)
		assert.False(t, customer.IsTrial)
	})

	t.Run("should reject a malformed trial end date", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)

		customer := models.Customer{}
		h := NewCustomerService(customerRepository)

		err := h.UpdatePlan(&customer, models.PlanEnterprise, true, utils.Ptr("01.04.2026"))
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})
}
