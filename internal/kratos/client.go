// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ory "github.com/ory/client-go"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/monitoring"
	"github.com/canonical/caseflow/internal/tracing"
)

const listPageSize = 250

type ClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	ListIdentities(ctx context.Context) ([]ory.Identity, error)
	CreateIdentity(ctx context.Context, email, displayName, password string) (string, error)
	SetPassword(ctx context.Context, identityID, password string) error
	DeleteIdentity(ctx context.Context, identityID string) error
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ClientInterface = (*Client)(nil)

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityIDByEmail")
	defer span.End()

	// NOTE: empty page token works around https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", nil
	}

	// Email is unique across the identity schema.
	return ids[0].Id, nil
}

func (c *Client) GetIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentity")
	defer span.End()

	identity, _, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identity, nil
}

func (c *Client) ListIdentities(ctx context.Context) ([]ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.ListIdentities")
	defer span.End()

	var out []ory.Identity
	token := ""
	for {
		ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).PageSize(listPageSize).PageToken(token).Execute()
		if err != nil {
			return nil, fmt.Errorf("failed to list identities: %w", err)
		}
		out = append(out, ids...)

		token = nextPageToken(r.Header.Get("Link"))
		if token == "" {
			return out, nil
		}
	}
}

// nextPageToken pulls the page_token out of the rel="next" segment of a
// Kratos Link header. Empty means the last page.
func nextPageToken(header string) string {
	for _, part := range strings.Split(header, ",") {
		if !strings.Contains(part, `rel="next"`) {
			continue
		}
		start := strings.Index(part, "<")
		end := strings.Index(part, ">")
		if start < 0 || end <= start {
			return ""
		}
		u, err := url.Parse(part[start+1 : end])
		if err != nil {
			return ""
		}
		return u.Query().Get("page_token")
	}
	return ""
}

func (c *Client) CreateIdentity(ctx context.Context, email, displayName, password string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateIdentity")
	defer span.End()

	traits := map[string]interface{}{
		"email": email,
	}
	if displayName != "" {
		traits["name"] = displayName
	}

	body := ory.CreateIdentityBody{
		SchemaId: "default",
		Traits:   traits,
	}

	if password != "" {
		body.Credentials = &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{
					Password: &password,
				},
			},
		}
	}

	identity, _, err := c.client.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(body).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create identity: %w", err)
	}

	return identity.Id, nil
}

// SetPassword replaces the identity's password credential, preserving traits.
func (c *Client) SetPassword(ctx context.Context, identityID, password string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.SetPassword")
	defer span.End()

	identity, err := c.GetIdentity(ctx, identityID)
	if err != nil {
		return err
	}

	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		traits = map[string]interface{}{}
	}

	body := ory.UpdateIdentityBody{
		SchemaId: identity.SchemaId,
		Traits:   traits,
		Credentials: &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{
					Password: &password,
				},
			},
		},
	}

	_, _, err = c.client.IdentityAPI.UpdateIdentity(ctx, identityID).UpdateIdentityBody(body).Execute()
	if err != nil {
		return fmt.Errorf("failed to update identity credentials: %w", err)
	}

	return nil
}

func (c *Client) DeleteIdentity(ctx context.Context, identityID string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.DeleteIdentity")
	defer span.End()

	_, err := c.client.IdentityAPI.DeleteIdentity(ctx, identityID).Execute()
	if err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	return nil
}

func (c *Client) CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateRecoveryLink")
	defer span.End()

	body := ory.CreateRecoveryCodeForIdentityBody{
		IdentityId: identityID,
		ExpiresIn:  &expiresIn,
	}

	recoveryCode, _, err := c.client.IdentityAPI.CreateRecoveryCodeForIdentity(ctx).CreateRecoveryCodeForIdentityBody(body).Execute()
	if err != nil {
		return "", "", fmt.Errorf("failed to create recovery code: %w", err)
	}

	return recoveryCode.RecoveryLink, recoveryCode.RecoveryCode, nil
}
