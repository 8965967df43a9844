// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits audit-grade events on a dedicated channel so they
// can be filtered and shipped independently of application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system.startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system.shutdown"))
}

func (s *SecurityLogger) AccountCreated(tenantID string) {
	s.l.Info("account created",
		zap.String("event", "auth.account_created"),
		zap.String("tenant_id", tenantID),
	)
}

func (s *SecurityLogger) AuthSuccess(tenantID string) {
	s.l.Info("authentication success",
		zap.String("event", "auth.success"),
		zap.String("tenant_id", tenantID),
	)
}

// AuthFailure deliberately logs no identifying detail beyond the event,
// the failure reason is uniform towards callers as well.
func (s *SecurityLogger) AuthFailure() {
	s.l.Warn("authentication failure", zap.String("event", "auth.failure"))
}

func (s *SecurityLogger) SessionRevoked(tenantID string) {
	s.l.Info("session revoked",
		zap.String("event", "auth.session_revoked"),
		zap.String("tenant_id", tenantID),
	)
}
