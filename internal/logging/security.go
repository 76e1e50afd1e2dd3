// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package logging

import "go.uber.org/zap"

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.Named("security")}
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system_shutdown"))
}

func (s *SecurityLogger) AuthnFailure(subject string) {
	s.l.Warn("authentication failure",
		zap.String("event", "authn_failure"),
		zap.String("subject", subject),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) InvitationIssued(tenantID, email string) {
	s.l.Info("invitation issued",
		zap.String("event", "invitation_issued"),
		zap.String("tenant_id", tenantID),
		zap.String("email", email),
	)
}

func (s *SecurityLogger) InvitationAccepted(tenantID, subject string) {
	s.l.Info("invitation accepted",
		zap.String("event", "invitation_accepted"),
		zap.String("tenant_id", tenantID),
		zap.String("subject", subject),
	)
}
