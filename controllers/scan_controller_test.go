package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/mocks"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestScanListFilters(t *testing.T) {
	now := time.Now()
	twoDaysAgo := now.Add(-48 * time.Hour)
	oneHourAgo := now.Add(-1 * time.Hour)

	scans := []models.Scan{
		{ScanName: "Full Infrastructure Scan", Status: models.ScanStatusRunning, StartedAt: &twoDaysAgo},
		{ScanName: "Web App Scan", Status: models.ScanStatusRunning, StartedAt: &oneHourAgo},
		{ScanName: "Cloud Assets Scan", Status: models.ScanStatusCompleted, StartedAt: &twoDaysAgo},
	}

	t.Run("should filter by status", func(t *testing.T) {
		scanRepository := mocks.NewScanRepository(t)
		scanRepository.On("ListOrdered").Return(scans, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/?status=completed", "")

		h := NewScanController(scanRepository, nil, nil)
		assert.NoError(t, h.List(ctx))

		var res []dtos.ScanDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Len(t, res, 1)
		assert.Equal(t, "Cloud Assets Scan", res[0].ScanName)
	})

	t.Run("should only return long running scans when toggled", func(t *testing.T) {
		scanRepository := mocks.NewScanRepository(t)
		scanRepository.On("ListOrdered").Return(scans, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/?long_running=true", "")

		h := NewScanController(scanRepository, nil, nil)
		assert.NoError(t, h.List(ctx))

		var res []dtos.ScanDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Len(t, res, 1)
		assert.Equal(t, "Full Infrastructure Scan", res[0].ScanName)
		assert.True(t, res[0].LongRunning)
	})
}

func TestScanCreate(t *testing.T) {
	t.Run("should fail without a customer id", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/", `{"scanName": "Full Scan"}`)

		h := NewScanController(nil, nil, nil)
		err := h.Create(ctx)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should launch the scan through the service", func(t *testing.T) {
		scanService := mocks.NewScanService(t)
		scanService.On("LaunchScan", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			scan := args.Get(0).(*models.Scan)
			scan.Status = models.ScanStatusRunning
			now := time.Now()
			scan.StartedAt = &now
		})

		ctx, rec := newJSONContext(http.MethodPost, "/", `{"customerId": "a2f3f8f0-5b6e-4e6e-9d9b-8f2b1a6c0d4e", "scanName": "Full Scan", "targetsCount": 128}`)

		h := NewScanController(nil, nil, scanService)
		assert.NoError(t, h.Create(ctx))
		assert.Equal(t, 201, rec.Code)

		var res dtos.ScanDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "Full Scan", res.ScanName)
		assert.Equal(t, "running", res.Status)
		assert.Equal(t, 128, res.TargetsCount)
	})
}

func TestScanUpdate(t *testing.T) {
	t.Run("should complete the scan and force progress to 100", func(t *testing.T) {
		scanRepository := mocks.NewScanRepository(t)
		scanRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		ctx, rec := newJSONContext(http.MethodPatch, "/", `{"status": "completed"}`)
		shared.SetScan(ctx, models.Scan{ScanName: "Full Scan", Status: models.ScanStatusRunning, Progress: 73})

		h := NewScanController(scanRepository, nil, nil)
		assert.NoError(t, h.Update(ctx))

		var res dtos.ScanDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "completed", res.Status)
		assert.Equal(t, 100, res.Progress)
		assert.NotNil(t, res.CompletedAt)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPatch, "/", `{"status": "paused"}`)
		shared.SetScan(ctx, models.Scan{ScanName: "Full Scan"})

		h := NewScanController(nil, nil, nil)
		err := h.Update(ctx)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should not hit the repository on an empty patch", func(t *testing.T) {
		scanRepository := mocks.NewScanRepository(t)

		ctx, rec := newJSONContext(http.MethodPatch, "/", `{}`)
		shared.SetScan(ctx, models.Scan{ScanName: "Full Scan"})

		h := NewScanController(scanRepository, nil, nil)
		assert.NoError(t, h.Update(ctx))
		assert.Equal(t, 200, rec.Code)
	})
}
