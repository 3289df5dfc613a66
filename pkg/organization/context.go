// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"sync"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/types"
)

// Context is the single source of truth for "which organizations can I see"
// and "which one is active" for one identity session. It is an explicit
// handle passed to its readers, constructed once per identity.
//
// Every load is tagged with a generation taken under the mutex; a completion
// whose generation has been superseded is dropped instead of overwriting
// state that belongs to a newer identity snapshot.
type Context struct {
	mu      sync.Mutex
	orgs    []*types.Organization
	active  *types.Organization
	theme   *string
	loading bool
	gen     uint64

	service  ServiceInterface
	identity IdentityProviderInterface
	logger   logging.LoggerInterface
}

func NewContext(service ServiceInterface, identity IdentityProviderInterface, logger logging.LoggerInterface) *Context {
	return &Context{
		service:  service,
		identity: identity,
		loading:  true,
		logger:   logger,
	}
}

// Load fetches the identity's organizations and resolves the active
// selection. While identity resolution is pending it defers without touching
// state, so readers never observe an empty, settled list before the identity
// is known. On fetch failure the previous list and selection are retained and
// only the loading flag ends (fail-open on stale data).
func (c *Context) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	ident := c.identity.Identity()

	switch ident.State {
	case IdentityPending:
		return nil
	case IdentityAbsent:
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.gen {
			return nil
		}
		c.orgs = nil
		c.active = nil
		c.loading = false
		return nil
	}

	orgs, err := c.service.ListOrganizations(ctx, ident.ID)
	if err != nil {
		c.logger.Errorf("failed to load organizations: %v", err)
		c.mu.Lock()
		if gen == c.gen {
			c.loading = false
		}
		c.mu.Unlock()
		return err
	}

	persisted, err := c.service.GetActiveSelection(ctx, ident.ID)
	if err != nil {
		c.logger.Errorf("failed to read active selection: %v", err)
		persisted = nil
	}

	active := resolveActive(orgs, persisted)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		c.logger.Debugf("dropping superseded organization load for %s", ident.ID)
		return nil
	}
	c.orgs = orgs
	c.active = active
	c.loading = false
	c.mu.Unlock()

	// Persist iff the resolution differs from what is stored. A superseded
	// load never reaches this point, so it cannot clobber a newer selection.
	if active != nil {
		if persisted == nil || *persisted != active.ID {
			if err := c.service.SaveActiveSelection(ctx, ident.ID, &active.ID); err != nil {
				c.logger.Errorf("failed to persist active selection: %v", err)
			}
		}
	} else if persisted != nil {
		if err := c.service.SaveActiveSelection(ctx, ident.ID, nil); err != nil {
			c.logger.Errorf("failed to clear active selection: %v", err)
		}
	}
	return nil
}

// resolveActive prefers a persisted id still present in the list, falls back
// to the first organization in name order, and otherwise resolves to none.
func resolveActive(orgs []*types.Organization, persisted *string) *types.Organization {
	if persisted != nil {
		for _, o := range orgs {
			if o.ID == *persisted {
				return o
			}
		}
	}
	if len(orgs) > 0 {
		return orgs[0]
	}
	return nil
}

// SetActive trusts its caller to pick from the loaded list; the UI constrains
// choices to it. The selection is persisted immediately.
func (c *Context) SetActive(ctx context.Context, org *types.Organization) error {
	c.mu.Lock()
	c.active = org
	c.mu.Unlock()

	ident := c.identity.Identity()
	if ident.State != IdentityPresent {
		return nil
	}

	var id *string
	if org != nil {
		id = &org.ID
	}
	return c.service.SaveActiveSelection(ctx, ident.ID, id)
}

// Refresh is Load under a name that reads better at call sites that just
// mutated organization data.
func (c *Context) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

func (c *Context) Organizations() []*types.Organization {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*types.Organization, len(c.orgs))
	copy(out, c.orgs)
	return out
}

func (c *Context) Active() *types.Organization {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Theme returns the locally mirrored theme, fetching the persisted value on
// first access. A missing persisted theme stays nil so callers fall back to
// their platform default.
func (c *Context) Theme(ctx context.Context) *string {
	c.mu.Lock()
	if c.theme != nil {
		t := c.theme
		c.mu.Unlock()
		return t
	}
	c.mu.Unlock()

	ident := c.identity.Identity()
	if ident.State != IdentityPresent {
		return nil
	}
	theme, err := c.service.Theme(ctx, ident.ID)
	if err != nil {
		c.logger.Errorf("failed to read theme: %v", err)
		return nil
	}
	c.mu.Lock()
	c.theme = theme
	c.mu.Unlock()
	return theme
}

// SetTheme updates the local mirror first so readers see the change
// immediately, then persists; a persistence failure is logged, not rolled
// back.
func (c *Context) SetTheme(ctx context.Context, theme string) error {
	c.mu.Lock()
	c.theme = &theme
	c.mu.Unlock()

	ident := c.identity.Identity()
	if ident.State != IdentityPresent {
		return nil
	}
	if err := c.service.SetTheme(ctx, ident.ID, theme); err != nil {
		c.logger.Errorf("failed to persist theme: %v", err)
		return err
	}
	return nil
}

func (c *Context) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}
