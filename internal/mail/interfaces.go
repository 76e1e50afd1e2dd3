// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

type MailerInterface interface {
	SendInvitation(ctx context.Context, toEmail, tenantName, token string) error
}
