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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulify/database/models"
)

type AuthSession interface {
	GetUserID() string
	GetEmail() string
}

type CustomerRepository interface {
	ListOrdered() ([]models.Customer, error)
	Read(id uuid.UUID) (models.Customer, error)
	ReadBySlug(slug string) (models.Customer, error)
	Create(tx DB, customer *models.Customer) error
	Save(tx DB, customer *models.Customer) error
	CreateBatch(tx DB, customers []models.Customer) error
}

type CustomerUserRepository interface {
	ListByCustomerID(customerID uuid.UUID) ([]models.CustomerUser, error)
	Read(id uuid.UUID) (models.CustomerUser, error)
	Create(tx DB, user *models.CustomerUser) error
	Save(tx DB, user *models.CustomerUser) error
	CreateBatch(tx DB, users []models.CustomerUser) error
}

type EmailCommunicationRepository interface {
	ListByCustomerID(customerID uuid.UUID) ([]models.EmailCommunication, error)
	Create(tx DB, email *models.EmailCommunication) error
	CreateBatch(tx DB, emails []models.EmailCommunication) error
}

type ScanRepository interface {
	ListOrdered() ([]models.Scan, error)
	ListByCustomerID(customerID uuid.UUID) ([]models.Scan, error)
	Read(id uuid.UUID) (models.Scan, error)
	Create(tx DB, scan *models.Scan) error
	Save(tx DB, scan *models.Scan) error
	CreateBatch(tx DB, scans []models.Scan) error
	Transaction(fn func(tx DB) error) error
}

type ScanResultRepository interface {
	ListByScanID(scanID uuid.UUID) ([]models.ScanResult, error)
	Read(id uuid.UUID) (models.ScanResult, error)
	Create(tx DB, result *models.ScanResult) error
	Save(tx DB, result *models.ScanResult) error
	CreateBatch(tx DB, results []models.ScanResult) error
}

type VulnerabilityTemplateRepository interface {
	ListOrdered() ([]models.VulnerabilityTemplate, error)
	Read(id uuid.UUID) (models.VulnerabilityTemplate, error)
	Create(tx DB, template *models.VulnerabilityTemplate) error
	Save(tx DB, template *models.VulnerabilityTemplate) error
	CreateBatch(tx DB, templates []models.VulnerabilityTemplate) error
}

type VulnerabilityRemediationRepository interface {
	ListOrdered() ([]models.VulnerabilityRemediation, error)
	Read(id uuid.UUID) (models.VulnerabilityRemediation, error)
	Create(tx DB, remediation *models.VulnerabilityRemediation) error
	Save(tx DB, remediation *models.VulnerabilityRemediation) error
	CreateBatch(tx DB, remediations []models.VulnerabilityRemediation) error
	ReplaceSteps(tx DB, remediationID uuid.UUID, steps []models.RemediationStep) error
}

type AuditLogRepository interface {
	ListOrdered() ([]models.AuditLog, error)
	Create(tx DB, log *models.AuditLog) error
	CreateBatch(tx DB, logs []models.AuditLog) error
}

type UserRepository interface {
	Read(id uuid.UUID) (models.User, error)
	ReadByEmail(email string) (models.User, error)
	Create(tx DB, user *models.User) error
	Save(tx DB, user *models.User) error
}

type CustomerService interface {
	CreateCustomer(customer *models.Customer) error
	UpdateLicenses(customer *models.Customer, licenses map[string]int) error
	UpdatePlan(customer *models.Customer, plan models.CustomerPlan, isTrial bool, trialEndDate *string) error
}

type ScanService interface {
	LaunchScan(scan *models.Scan) error
	AttachResults(scan models.Scan, results []models.ScanResult) error
}

type Mail struct {
	FromName string
	To       string
	Subject  string
	Body     string
}

// MailSender delivers outbound mail. Fire and forget: callers log
// delivery failures, they never fail the triggering request.
type MailSender interface {
	Send(ctx context.Context, mail Mail) error
}

// AuditRecorder appends audit trail events for mutating operations.
type AuditRecorder interface {
	Record(event models.AuditLog)
}
