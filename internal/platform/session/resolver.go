// Package session assigns opaque identities to anonymous callers.
//
// Resolution is an explicit call made once per request at the HTTP
// boundary, never a side effect of some other lookup; the resulting id is
// threaded into the quota gate.
package session

import (
	"context"

	"github.com/google/uuid"
)

// Store persists session identifiers. Following Go convention: the
// interface is defined by the consumer (Resolver), not the provider.
type Store interface {
	// Touch reports whether id is a known session, refreshing its TTL when it is.
	Touch(ctx context.Context, id string) (bool, error)
	// Save persists a freshly minted session id.
	Save(ctx context.Context, id string) error
}

// Resolver resolves the caller's session identity, minting one on first contact.
type Resolver struct {
	store Store
}

// NewResolver creates a Resolver backed by the given store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// ResolveOrCreate returns the session id for a caller that presented the
// given id (empty when no cookie was sent). A presented id is only honored
// if the store still knows it; anything else gets a fresh unguessable id.
// The second return value reports whether a new session was created.
func (r *Resolver) ResolveOrCreate(ctx context.Context, presented string) (string, bool, error) {
	if presented != "" {
		known, err := r.store.Touch(ctx, presented)
		if err != nil {
			return "", false, err
		}
		if known {
			return presented, false, nil
		}
	}

	id := uuid.NewString()
	if err := r.store.Save(ctx, id); err != nil {
		return "", false, err
	}
	return id, true, nil
}
