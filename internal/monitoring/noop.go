// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

var _ MonitorInterface = (*NoopMonitor)(nil)

type NoopMonitor struct{}

func (m *NoopMonitor) GetService() string { return "" }

func (m *NoopMonitor) SetResponseTimeMetric(map[string]string, float64) error { return nil }

func (m *NoopMonitor) SetDependencyAvailability(map[string]string, float64) error { return nil }

func NewNoopMonitor() *NoopMonitor {
	return new(NoopMonitor)
}
