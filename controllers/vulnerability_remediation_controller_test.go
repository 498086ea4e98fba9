package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRemediationVote(t *testing.T) {
	remediationID := uuid.New()
	remediation := models.VulnerabilityRemediation{
		Model:             models.Model{ID: remediationID},
		VulnerabilityName: "Open Redirect",
		ThumbsUp:          4,
		ThumbsDown:        1,
	}

	t.Run("should increment thumbs up", func(t *testing.T) {
		remediationRepository := mocks.NewVulnerabilityRemediationRepository(t)
		remediationRepository.On("Read", remediationID).Return(remediation, nil)
		remediationRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		ctx, rec := newJSONContext(http.MethodPost, "/", `{"vote": "up"}`)
		ctx.SetParamNames("remediationID")
		ctx.SetParamValues(remediationID.String())

		h := NewVulnerabilityRemediationController(remediationRepository)
		assert.NoError(t, h.Vote(ctx))

		var res dtos.RemediationDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, 5, res.ThumbsUp)
		assert.Equal(t, 1, res.ThumbsDown)
	})

	t.Run("should reject an unknown vote value", func(t *testing.T) {
		remediationRepository := mocks.NewVulnerabilityRemediationRepository(t)
		remediationRepository.On("Read", remediationID).Return(remediation, nil)

		ctx, _ := newJSONContext(http.MethodPost, "/", `{"vote": "sideways"}`)
		ctx.SetParamNames("remediationID")
		ctx.SetParamValues(remediationID.String())

		h := NewVulnerabilityRemediationController(remediationRepository)
		err := h.Vote(ctx)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})
}

func TestRemediationUpdate(t *testing.T) {
	remediationID := uuid.New()

	t.Run("should mark a team edit and replace the steps", func(t *testing.T) {
		remediationRepository := mocks.NewVulnerabilityRemediationRepository(t)
		remediationRepository.On("Read", remediationID).Return(models.VulnerabilityRemediation{
			Model:             models.Model{ID: remediationID},
			VulnerabilityName: "SQL Injection",
			Source:            models.RemediationSourceAIGenerated,
			LastModified:      time.Now().Add(-72 * time.Hour),
		}, nil)
		remediationRepository.On("ReplaceSteps", mock.Anything, remediationID, mock.Anything).Return(nil)
		remediationRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		ctx, rec := newJSONContext(http.MethodPatch, "/", `{"steps": [{"title": "Use prepared statements"}, {"title": "Validate input"}]}`)
		ctx.SetParamNames("remediationID")
		ctx.SetParamValues(remediationID.String())

		h := NewVulnerabilityRemediationController(remediationRepository)
		assert.NoError(t, h.Update(ctx))

		var res dtos.RemediationDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "team_edited", res.Source)
		assert.Len(t, res.Steps, 2)
		assert.Equal(t, 1, res.Steps[0].StepNumber)
		assert.Equal(t, 2, res.Steps[1].StepNumber)
		assert.WithinDuration(t, time.Now(), res.LastModified, time.Minute)
	})

	t.Run("should leave the source alone on an empty patch", func(t *testing.T) {
		remediationRepository := mocks.NewVulnerabilityRemediationRepository(t)
		remediationRepository.On("Read", remediationID).Return(models.VulnerabilityRemediation{
			Model:  models.Model{ID: remediationID},
			Source: models.RemediationSourceAIGenerated,
		}, nil)

		ctx, rec := newJSONContext(http.MethodPatch, "/", `{}`)
		ctx.SetParamNames("remediationID")
		ctx.SetParamValues(remediationID.String())

		h := NewVulnerabilityRemediationController(remediationRepository)
		assert.NoError(t, h.Update(ctx))

		var res dtos.RemediationDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "ai_generated", res.Source)
	})

	t.Run("should 404 on an unknown remediation", func(t *testing.T) {
		unknownID := uuid.New()
		remediationRepository := mocks.NewVulnerabilityRemediationRepository(t)
		remediationRepository.On("Read", unknownID).Return(models.VulnerabilityRemediation{}, echo.NewHTTPError(404))

		ctx, _ := newJSONContext(http.MethodPatch, "/", `{}`)
		ctx.SetParamNames("remediationID")
		ctx.SetParamValues(unknownID.String())

		h := NewVulnerabilityRemediationController(remediationRepository)
		err := h.Update(ctx)
		assert.Error(t, err)
		assert.Equal(t, 404, err.(*echo.HTTPError).Code)
	})
}
