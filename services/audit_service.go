// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"log/slog"

	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/shared"
)

// auditRecorder appends audit trail rows. Recording never fails the
// request that triggered it, failures are only logged.
type auditRecorder struct {
	auditLogRepository shared.AuditLogRepository
}

func NewAuditRecorder(auditLogRepository shared.AuditLogRepository) *auditRecorder {
	return &auditRecorder{
		auditLogRepository: auditLogRepository,
	}
}

func (a *auditRecorder) Record(event models.AuditLog) {
	if event.Severity == "" {
		event.Severity = models.SeverityInfo
	}
	if event.Status == "" {
		event.Status = models.AuditLogStatusSuccess
	}

	if err := a.auditLogRepository.Create(nil, &event); err != nil {
		slog.Error("could not record audit event", "eventType", event.EventType, "err", err)
	}
}
