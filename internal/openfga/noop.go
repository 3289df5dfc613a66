// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/monitoring"
	"github.com/canonical/caseflow/internal/tracing"
)

var _ OpenFGAClientInterface = (*NoopClient)(nil)

// NoopClient allows every check. Used when authorization is disabled; the
// storage-backed role resolution still applies.
type NoopClient struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (n *NoopClient) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	return true, nil
}

func (n *NoopClient) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	return []string{}, nil
}

func (n *NoopClient) WriteTuple(ctx context.Context, user, relation, object string) error {
	return nil
}

func (n *NoopClient) DeleteTuple(ctx context.Context, user, relation, object string) error {
	return nil
}

func (n *NoopClient) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	return nil
}

func (n *NoopClient) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error) {
	return &client.ClientReadResponse{}, nil
}

func (n *NoopClient) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	return &fga.AuthorizationModel{}, nil
}

func (n *NoopClient) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	return true, nil
}

func NewNoopClient(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *NoopClient {
	return &NoopClient{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
