// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a production zap logger at the given level.
// Unparseable levels fall back to error to keep startup quiet by default.
func NewLogger(level string) *Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: l.Sugar(),
		security:      &SecurityLogger{l: l.Named("security")},
	}
}

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthFailure(subject, reason string) {
	s.l.Warn("authentication failure",
		zap.String("event", "auth_failure"),
		zap.String("subject", subject),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, permission string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("permission", permission),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system_shutdown"))
}
