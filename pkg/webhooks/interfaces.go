// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
)

// StorageInterface defines the storage operations required by the webhooks package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	SetTheme(ctx context.Context, identityID string, theme string) error
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email string) error
}
