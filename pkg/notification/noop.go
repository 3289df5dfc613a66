// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import "github.com/canonical/caseflow/internal/types"

// NoopAlerter is used where no out-of-band alert channel exists.
type NoopAlerter struct{}

func NewNoopAlerter() *NoopAlerter {
	return &NoopAlerter{}
}

func (a *NoopAlerter) Alert(_ *types.Notification) {}
