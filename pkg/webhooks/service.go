// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/monitoring"
	"github.com/canonical/caseflow/internal/tracing"
)

const defaultTheme = "system"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration runs after Kratos completes a registration flow. It seeds
// the identity's settings row so the first context load finds defaults instead
// of ErrNotFound. Notifications are organization-scoped and a fresh identity
// belongs to none, so no feed entry is written here.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	s.logger.Debugf("handling registration for identity %s with email %s", identityID, email)

	if identityID == "" || email == "" {
		return fmt.Errorf("identity ID or email is empty")
	}

	if err := s.storage.SetTheme(ctx, identityID, defaultTheme); err != nil {
		return fmt.Errorf("failed to seed user settings: %w", err)
	}

	s.logger.Infof("provisioned settings for identity %s", identityID)
	return nil
}
