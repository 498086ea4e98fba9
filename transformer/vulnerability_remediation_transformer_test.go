// Copyright (C) 2025 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package transformer

import (
	"testing"
	"time"

	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/stretchr/testify/assert"
)

func TestRemediationCreateRequestToModel(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should number steps in request order", func(t *testing.T) {
		remediation := RemediationCreateRequestToModel(dtos.RemediationCreateRequest{
			VulnerabilityName: "SQL Injection",
			Steps: []dtos.RemediationStepRequest{
				{Title: "Identify the injection point"},
				{Title: "Parameterize the query"},
				{Title: "Verify with a regression scan"},
			},
		}, now)

		assert.Len(t, remediation.Steps, 3)
		assert.Equal(t, 1, remediation.Steps[0].StepNumber)
		assert.Equal(t, 2, remediation.Steps[1].StepNumber)
		assert.Equal(t, 3, remediation.Steps[2].StepNumber)
	})

	t.Run("should default to ai_generated", func(t *testing.T) {
		remediation := RemediationCreateRequestToModel(dtos.RemediationCreateRequest{
			VulnerabilityName: "XSS",
		}, now)

		assert.Equal(t, models.RemediationSourceAIGenerated, remediation.Source)
		assert.Equal(t, now, remediation.LastModified)
	})
}

func TestApplyRemediationPatchRequestToModel(t *testing.T) {
	t.Run("should replace the whole step sequence", func(t *testing.T) {
		remediation := models.VulnerabilityRemediation{
			Steps: []models.RemediationStep{
				{StepNumber: 1, Title: "old"},
			},
		}

		steps := []dtos.RemediationStepRequest{
			{Title: "first"},
			{Title: "second"},
		}
		updated := ApplyRemediationPatchRequestToModel(dtos.RemediationPatchRequest{
			Steps: &steps,
		}, &remediation)

		assert.True(t, updated)
		assert.Len(t, remediation.Steps, 2)
		assert.Equal(t, "first", remediation.Steps[0].Title)
		assert.Equal(t, 2, remediation.Steps[1].StepNumber)
	})

	t.Run("should leave steps alone when absent", func(t *testing.T) {
		remediation := models.VulnerabilityRemediation{
			Steps: []models.RemediationStep{
				{StepNumber: 1, Title: "keep me"},
			},
		}

		updated := ApplyRemediationPatchRequestToModel(dtos.RemediationPatchRequest{}, &remediation)

		assert.False(t, updated)
		assert.Equal(t, "keep me", remediation.Steps[0].Title)
	})
}
