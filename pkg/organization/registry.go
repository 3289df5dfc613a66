// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"sync"

	"github.com/canonical/caseflow/internal/logging"
)

// staticIdentity is the provider used for server-side contexts, where the
// authenticated identity is already settled by the time a handle is created.
type staticIdentity struct {
	id string
}

func (s staticIdentity) Identity() Identity {
	if s.id == "" {
		return Identity{State: IdentityAbsent}
	}
	return Identity{ID: s.id, State: IdentityPresent}
}

// Registry hands out one Context per identity, creating it on first use.
// Handles are kept for the life of the process so concurrent requests from
// the same identity share generation state.
type Registry struct {
	mu       sync.Mutex
	contexts map[string]*Context

	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewRegistry(service ServiceInterface, logger logging.LoggerInterface) *Registry {
	return &Registry{
		contexts: make(map[string]*Context),
		service:  service,
		logger:   logger,
	}
}

func (r *Registry) Context(identityID string) *Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.contexts[identityID]; ok {
		return c
	}
	c := NewContext(r.service, staticIdentity{id: identityID}, r.logger)
	r.contexts[identityID] = c
	return c
}

// Evict drops an identity's handle, typically after the identity is deleted.
func (r *Registry) Evict(identityID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.contexts, identityID)
}
