// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"bytes"
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/monitoring"
	"github.com/canonical/caseflow/internal/tracing"
)

// Tuple is a (user, relation, object) relationship triple.
type Tuple struct {
	User     string
	Relation string
	Object   string
}

func NewTuple(user, relation, object string) *Tuple {
	return &Tuple{User: user, Relation: relation, Object: object}
}

type OpenFGAClientInterface interface {
	Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error)
	ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuples(ctx context.Context, tuples ...Tuple) error
	ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error)
	ReadModel(ctx context.Context) (*fga.AuthorizationModel, error)
	CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error)
}

var _ OpenFGAClientInterface = (*Client)(nil)

type Client struct {
	c *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (o *Client) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	ctx, span := o.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	body := client.ClientCheckRequest{
		User:     user,
		Relation: relation,
		Object:   object,
	}

	if len(contextualTuples) > 0 {
		ct := make([]client.ClientContextualTupleKey, len(contextualTuples))
		for i, t := range contextualTuples {
			ct[i] = client.ClientContextualTupleKey{User: t.User, Relation: t.Relation, Object: t.Object}
		}
		body.ContextualTuples = ct
	}

	r, err := o.c.Check(ctx).Body(body).Execute()
	if err != nil {
		return false, fmt.Errorf("failed to perform check: %w", err)
	}

	return r.GetAllowed(), nil
}

func (o *Client) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	ctx, span := o.tracer.Start(ctx, "openfga.Client.ListObjects")
	defer span.End()

	r, err := o.c.ListObjects(ctx).Body(
		client.ClientListObjectsRequest{
			User:     user,
			Relation: relation,
			Type:     objectType,
		},
	).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}

	return r.GetObjects(), nil
}

func (o *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := o.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	_, err := o.c.WriteTuples(ctx).Body(
		[]client.ClientTupleKey{
			{User: user, Relation: relation, Object: object},
		},
	).Execute()
	if err != nil {
		return fmt.Errorf("failed to write tuple: %w", err)
	}

	return nil
}

func (o *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	return o.DeleteTuples(ctx, *NewTuple(user, relation, object))
}

func (o *Client) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := o.tracer.Start(ctx, "openfga.Client.DeleteTuples")
	defer span.End()

	keys := make([]client.ClientTupleKeyWithoutCondition, len(tuples))
	for i, t := range tuples {
		keys[i] = client.ClientTupleKeyWithoutCondition{User: t.User, Relation: t.Relation, Object: t.Object}
	}

	_, err := o.c.DeleteTuples(ctx).Body(keys).Execute()
	if err != nil {
		return fmt.Errorf("failed to delete tuples: %w", err)
	}

	return nil
}

func (o *Client) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error) {
	ctx, span := o.tracer.Start(ctx, "openfga.Client.ReadTuples")
	defer span.End()

	r, err := o.c.Read(ctx).Body(
		client.ClientReadRequest{
			User:     &user,
			Relation: &relation,
			Object:   &object,
		},
	).Options(
		client.ClientReadOptions{
			ContinuationToken: &continuationToken,
		},
	).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to read tuples: %w", err)
	}

	return r, nil
}

func (o *Client) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	ctx, span := o.tracer.Start(ctx, "openfga.Client.ReadModel")
	defer span.End()

	r, err := o.c.ReadAuthorizationModel(ctx).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to read authorization model: %w", err)
	}

	return r.AuthorizationModel, nil
}

// CompareModel compares type definitions only; model ids always differ.
func (o *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := o.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	current, err := o.ReadModel(ctx)
	if err != nil {
		return false, err
	}
	if current == nil {
		return false, nil
	}

	a, err := json.Marshal(current.TypeDefinitions)
	if err != nil {
		return false, fmt.Errorf("failed to marshal model: %w", err)
	}
	b, err := json.Marshal(model.TypeDefinitions)
	if err != nil {
		return false, fmt.Errorf("failed to marshal model: %w", err)
	}

	return bytes.Equal(a, b), nil
}

// CreateStore provisions a new store and returns its id. Used by the
// bootstrap CLI, not by the serving path.
func (o *Client) CreateStore(ctx context.Context, name string) (string, error) {
	ctx, span := o.tracer.Start(ctx, "openfga.Client.CreateStore")
	defer span.End()

	r, err := o.c.CreateStore(ctx).Body(client.ClientCreateStoreRequest{Name: name}).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create store: %w", err)
	}

	return r.GetId(), nil
}

func (o *Client) SetStoreID(ctx context.Context, storeID string) {
	o.c.SetStoreId(storeID)
}

func (o *Client) WriteModel(ctx context.Context, req *client.ClientWriteAuthorizationModelRequest) (string, error) {
	ctx, span := o.tracer.Start(ctx, "openfga.Client.WriteModel")
	defer span.End()

	r, err := o.c.WriteAuthorizationModel(ctx).Body(*req).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to write authorization model: %w", err)
	}

	return r.GetAuthorizationModelId(), nil
}

func NewClient(cfg *Config) *Client {
	c := new(Client)

	fgaConfig := client.ClientConfiguration{
		ApiScheme:            cfg.ApiScheme,
		ApiHost:              cfg.ApiHost,
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.AuthModelID,
	}

	if cfg.ApiToken != "" {
		fgaConfig.Credentials = &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{
				ApiToken: cfg.ApiToken,
			},
		}
	}

	fgaClient, err := client.NewSdkClient(&fgaConfig)
	if err != nil {
		cfg.Logger.Fatalf("failed to create openfga client: %v", err)
	}

	c.c = fgaClient
	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger

	return c
}
