// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})

	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits audit-grade security events on a dedicated
// logger so they can be routed and retained separately.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthnFailure(subject string)
	AuthzFailure(subject, action string)
	InvitationIssued(tenantID, email string)
	InvitationAccepted(tenantID, subject string)
}
