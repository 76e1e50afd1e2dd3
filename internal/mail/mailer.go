// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"net/url"
	"strings"

	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// BaseURL is the public address of the frontend, invite links are
	// built on top of it.
	BaseURL string
}

// Mailer sends transactional invitation mail over plain SMTP. Delivery is
// best effort, callers are expected to log and continue on failure.
type Mailer struct {
	config *Config

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

var _ MailerInterface = (*Mailer)(nil)

func NewMailer(config *Config, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Mailer {
	return &Mailer{
		config: config,
		tracer: tracer,
		logger: logger,
	}
}

func (m *Mailer) SendInvitation(ctx context.Context, toEmail, tenantName, token string) error {
	_, span := m.tracer.Start(ctx, "mail.Mailer.SendInvitation")
	defer span.End()

	link, err := m.inviteLink(token)
	if err != nil {
		return fmt.Errorf("failed to build invite link: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.config.From)
	fmt.Fprintf(&b, "To: %s\r\n", toEmail)
	fmt.Fprintf(&b, "Subject: You have been invited to join %s\r\n", tenantName)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "You have been invited to join %s.\r\n\r\n", tenantName)
	fmt.Fprintf(&b, "Accept the invitation here: %s\r\n\r\n", link)
	b.WriteString("The invitation expires in 48 hours.\r\n")

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	if err := smtp.SendMail(addr, auth, m.config.From, []string{toEmail}, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to send invitation mail: %w", err)
	}

	return nil
}

func (m *Mailer) inviteLink(token string) (string, error) {
	u, err := url.Parse(m.config.BaseURL)
	if err != nil {
		return "", err
	}
	u.Path = "/accept-invite"
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
