// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	metric, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		return fmt.Errorf("failed to fetch response time metric: %w", err)
	}

	metric.Observe(value)
	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	metric, err := m.dependencyAvailability.GetMetricWith(tags)
	if err != nil {
		return fmt.Errorf("failed to fetch dependency availability metric: %w", err)
	}

	metric.Set(value)
	return nil
}

func (m *Monitor) registerMetrics() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "http",
			Name:      "response_time_seconds",
			Help:      "HTTP response time by route and status",
			ConstLabels: prometheus.Labels{
				"service": m.service,
			},
		},
		[]string{"route", "status"},
	)

	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "dependency",
			Name:      "available",
			Help:      "upstream dependency availability (1 up, 0 down)",
			ConstLabels: prometheus.Labels{
				"service": m.service,
			},
		},
		[]string{"component"},
	)

	prometheus.MustRegister(m.responseTime, m.dependencyAvailability)
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerMetrics()

	return m
}
