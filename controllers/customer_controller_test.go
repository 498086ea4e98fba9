package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/l3montree-dev/vulify/auth"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/mocks"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestCustomerListFilters(t *testing.T) {
	customers := []models.Customer{
		{CompanyName: "Acme Corp", Slug: "acme-corp", Status: models.CustomerStatusActive, Plan: models.PlanEnterprise, Tags: []string{"enterprise"}},
		{CompanyName: "TechStart Inc", Slug: "techstart-inc", Status: models.CustomerStatusTrial, Plan: models.PlanProfessional},
		{CompanyName: "DataFlow Ltd", Slug: "dataflow-ltd", Status: models.CustomerStatusActive, Plan: models.PlanStarter, MissedPayment: true},
	}

	t.Run("should filter by status and search query", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("ListOrdered").Return(customers, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/?status=active&q=acme", "")

		h := NewCustomerController(customerRepository, nil, nil, nil, nil, nil)
		assert.NoError(t, h.List(ctx))

		var res []dtos.CustomerDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Len(t, res, 1)
		assert.Equal(t, "Acme Corp", res[0].CompanyName)
	})

	t.Run("should only return missed payments when toggled", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("ListOrdered").Return(customers, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/?missed_payment=true", "")

		h := NewCustomerController(customerRepository, nil, nil, nil, nil, nil)
		assert.NoError(t, h.List(ctx))

		var res []dtos.CustomerDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Len(t, res, 1)
		assert.Equal(t, "DataFlow Ltd", res[0].CompanyName)
	})

	t.Run("should return everything without filters", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("ListOrdered").Return(customers, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/", "")

		h := NewCustomerController(customerRepository, nil, nil, nil, nil, nil)
		assert.NoError(t, h.List(ctx))

		var res []dtos.CustomerDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Len(t, res, 3)
	})
}

func TestCustomerCreate(t *testing.T) {
	t.Run("should fail on a garbage body", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/", "fantasy")

		h := NewCustomerController(nil, nil, nil, nil, nil, nil)
		assert.Error(t, h.Create(ctx))
	})

	t.Run("should fail without a company name", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/", `{"plan": "Enterprise"}`)

		h := NewCustomerController(nil, nil, nil, nil, nil, nil)
		err := h.Create(ctx)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should create the customer and record an audit event", func(t *testing.T) {
		customerService := mocks.NewCustomerService(t)
		customerService.On("CreateCustomer", mock.Anything).Return(nil)
		auditRecorder := mocks.NewAuditRecorder(t)
		auditRecorder.On("Record", mock.Anything).Return()

		ctx, rec := newJSONContext(http.MethodPost, "/", `{"companyName": "Acme Corp"}`)
		shared.SetSession(ctx, auth.NewSession("user-1", "admin@vulify.io"))

		h := NewCustomerController(nil, nil, nil, nil, customerService, auditRecorder)
		assert.NoError(t, h.Create(ctx))
		assert.Equal(t, 201, rec.Code)

		var res dtos.CustomerDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "acme-corp", res.Slug)
	})
}

func TestCustomerUpdateLicenses(t *testing.T) {
	t.Run("should delegate to the customer service", func(t *testing.T) {
		customerService := mocks.NewCustomerService(t)
		customerService.On("UpdateLicenses", mock.Anything, map[string]int{"web_app_scan": 2}).Return(nil)

		ctx, rec := newJSONContext(http.MethodPut, "/", `{"licenses": {"web_app_scan": 2}}`)
		shared.SetCustomer(ctx, models.Customer{CompanyName: "Acme Corp", Slug: "acme-corp"})

		h := NewCustomerController(nil, nil, nil, nil, customerService, nil)
		assert.NoError(t, h.UpdateLicenses(ctx))
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should fail without a license map", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPut, "/", `{}`)
		shared.SetCustomer(ctx, models.Customer{CompanyName: "Acme Corp", Slug: "acme-corp"})

		h := NewCustomerController(nil, nil, nil, nil, nil, nil)
		err := h.UpdateLicenses(ctx)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})
}

func TestCustomerUpdate(t *testing.T) {
	t.Run("should refuse to blank the company name", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPatch, "/", `{"companyName": ""}`)
		shared.SetCustomer(ctx, models.Customer{CompanyName: "Acme Corp", Slug: "acme-corp"})

		h := NewCustomerController(nil, nil, nil, nil, nil, nil)
		err := h.Update(ctx)
		assert.Error(t, err)
		assert.Equal(t, 409, err.(*echo.HTTPError).Code)
	})

	t.Run("should not hit the repository on an empty patch", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)

		ctx, rec := newJSONContext(http.MethodPatch, "/", `{}`)
		shared.SetCustomer(ctx, models.Customer{CompanyName: "Acme Corp", Slug: "acme-corp"})

		h := NewCustomerController(customerRepository, nil, nil, nil, nil, nil)
		assert.NoError(t, h.Update(ctx))
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should persist and return the patched customer", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		ctx, rec := newJSONContext(http.MethodPatch, "/", `{"contractValue": 48000}`)
		shared.SetCustomer(ctx, models.Customer{CompanyName: "Acme Corp", Slug: "acme-corp"})

		h := NewCustomerController(customerRepository, nil, nil, nil, nil, nil)
		assert.NoError(t, h.Update(ctx))

		var res dtos.CustomerDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, 48000., res.ContractValue)
	})
}

func TestCustomerTags(t *testing.T) {
	t.Run("should return the distinct sorted tag list", func(t *testing.T) {
		customerRepository := mocks.NewCustomerRepository(t)
		customerRepository.On("ListOrdered").Return([]models.Customer{
			{Tags: []string{"enterprise", "priority"}},
			{Tags: []string{"priority", "at-risk"}},
		}, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/", "")

		h := NewCustomerController(customerRepository, nil, nil, nil, nil, nil)
		assert.NoError(t, h.Tags(ctx))

		var res []string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, []string{"at-risk", "enterprise", "priority"}, res)
	})
}
