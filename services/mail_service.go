// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/l3montree-dev/vulify/monitoring"
	"github.com/l3montree-dev/vulify/shared"
)

// MailFromName is the sender display name on outbound customer mail.
const MailFromName = "Vulify Security Team"

// mailClient delivers mail through an HTTP webhook. The actual SMTP
// sending lives in a separate relay service behind MAIL_WEBHOOK_URL.
type mailClient struct {
	url    string
	secret *string
	client *http.Client
}

func NewMailClient(url string, secret *string) *mailClient {
	return &mailClient{
		url:    url,
		secret: secret,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *mailClient) Send(ctx context.Context, mail shared.Mail) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(mail); err != nil {
		monitoring.MailDeliveries.WithLabelValues("error").Inc()
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &buf)
	if err != nil {
		monitoring.MailDeliveries.WithLabelValues("error").Inc()
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != nil {
		req.Header.Set("X-Webhook-Secret", *c.secret)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		monitoring.MailDeliveries.WithLabelValues("error").Inc()
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		monitoring.MailDeliveries.WithLabelValues("error").Inc()
		return fmt.Errorf("mail webhook responded with status %s", resp.Status)
	}

	monitoring.MailDeliveries.WithLabelValues("success").Inc()
	return nil
}

// NewPasswordResetMail builds the mail sent when an admin triggers a
// password reset for a customer seat.
func NewPasswordResetMail(recipientEmail, recipientName string) shared.Mail {
	return shared.Mail{
		FromName: MailFromName,
		To:       recipientEmail,
		Subject:  "Password Reset Requested",
		Body: fmt.Sprintf(
			"Hello %s,\n\nA password reset was requested for your account. Follow the link in this mail to choose a new password. If you did not request this, you can safely ignore it.\n\n%s",
			recipientName, MailFromName,
		),
	}
}
