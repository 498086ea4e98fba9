package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTemplateListFilters(t *testing.T) {
	templates := []models.VulnerabilityTemplate{
		{TemplateName: "SQL Injection - Auth Bypass", VulnerabilityType: "sql_injection", Severity: models.SeverityCritical, Enabled: true},
		{TemplateName: "Reflected XSS", VulnerabilityType: "xss", Severity: models.SeverityHigh, Enabled: true},
		{TemplateName: "Legacy Heartbleed Check", VulnerabilityType: "tls", Severity: models.SeverityCritical, Enabled: false},
	}

	t.Run("should hide disabled templates by default", func(t *testing.T) {
		templateRepository := mocks.NewVulnerabilityTemplateRepository(t)
		templateRepository.On("ListOrdered").Return(templates, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/", "")

		h := NewVulnerabilityTemplateController(templateRepository)
		assert.NoError(t, h.List(ctx))

		var res []dtos.VulnerabilityTemplateDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Len(t, res, 2)
	})

	t.Run("should include disabled templates when toggled", func(t *testing.T) {
		templateRepository := mocks.NewVulnerabilityTemplateRepository(t)
		templateRepository.On("ListOrdered").Return(templates, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/?show_disabled=true", "")

		h := NewVulnerabilityTemplateController(templateRepository)
		assert.NoError(t, h.List(ctx))

		var res []dtos.VulnerabilityTemplateDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Len(t, res, 3)
	})

	t.Run("should combine severity and search filters", func(t *testing.T) {
		templateRepository := mocks.NewVulnerabilityTemplateRepository(t)
		templateRepository.On("ListOrdered").Return(templates, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/?severity=critical&q=sql", "")

		h := NewVulnerabilityTemplateController(templateRepository)
		assert.NoError(t, h.List(ctx))

		var res []dtos.VulnerabilityTemplateDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Len(t, res, 1)
		assert.Equal(t, "SQL Injection - Auth Bypass", res[0].TemplateName)
	})
}

func TestTemplateUpdate(t *testing.T) {
	templateID := uuid.New()

	t.Run("should toggle a template off", func(t *testing.T) {
		templateRepository := mocks.NewVulnerabilityTemplateRepository(t)
		templateRepository.On("Read", templateID).Return(models.VulnerabilityTemplate{
			Model:        models.Model{ID: templateID},
			TemplateName: "Reflected XSS",
			Enabled:      true,
		}, nil)
		templateRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		ctx, rec := newJSONContext(http.MethodPatch, "/", `{"enabled": false}`)
		ctx.SetParamNames("templateID")
		ctx.SetParamValues(templateID.String())

		h := NewVulnerabilityTemplateController(templateRepository)
		assert.NoError(t, h.Update(ctx))

		var res dtos.VulnerabilityTemplateDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.False(t, res.Enabled)
	})
}
