// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

// NoopMailer drops mail on the floor, used when SMTP is not configured.
type NoopMailer struct{}

var _ MailerInterface = (*NoopMailer)(nil)

func NewNoopMailer() *NoopMailer {
	return &NoopMailer{}
}

func (m *NoopMailer) SendInvitation(ctx context.Context, toEmail, tenantName, token string) error {
	return nil
}
