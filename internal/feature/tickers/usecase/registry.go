// Package usecase implements the ticker registry.
//
// The registry is the only component with process-lifetime mutable state:
// the valid set is written at Initialize (and explicit Refresh) and read
// everywhere else through an immutable snapshot.
package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
)

// ShardProber answers whether a ticker's shard set holds usable data.
// Following Go convention: interfaces are defined by the consumer (usecase).
type ShardProber interface {
	// Probe reports whether at least one shard of ticker exposes at least
	// one record for that symbol.
	Probe(ctx context.Context, ticker string) (bool, error)
}

// Registry validates the fixed ticker allow-list against the backing shards
// and serves the valid set. Reads never lock; Initialize/Refresh swap an
// immutable snapshot atomically.
type Registry struct {
	allow    []string
	allowSet map[string]struct{}
	prober   ShardProber
	valid    atomic.Pointer[[]string]
}

// NewRegistry creates a Registry for the given allow-list. Symbols are
// canonicalized to upper case. The registry is not usable until Initialize
// has completed.
func NewRegistry(allowList []string, prober ShardProber) *Registry {
	allow := make([]string, 0, len(allowList))
	allowSet := make(map[string]struct{}, len(allowList))
	for _, t := range allowList {
		symbol := strings.ToUpper(strings.TrimSpace(t))
		if _, dup := allowSet[symbol]; symbol == "" || dup {
			continue
		}
		allow = append(allow, symbol)
		allowSet[symbol] = struct{}{}
	}
	return &Registry{allow: allow, allowSet: allowSet, prober: prober}
}

// Initialize probes every allow-listed ticker and publishes the valid set.
// Must complete before any read; main calls it before the router starts.
func (r *Registry) Initialize(ctx context.Context) error {
	return r.Refresh(ctx)
}

// Refresh re-runs shard validation and swaps the published snapshot.
// If no ticker validates, the whole allow-list is treated as valid so a
// transient storage problem does not take the service down entirely.
func (r *Registry) Refresh(ctx context.Context) error {
	valid := make([]string, 0, len(r.allow))
	for _, ticker := range r.allow {
		ok, err := r.prober.Probe(ctx, ticker)
		if err != nil {
			slog.Warn("could not probe shards for ticker", "ticker", ticker, "error", err)
			continue
		}
		if ok {
			valid = append(valid, ticker)
		} else {
			slog.Warn("no usable shard data for ticker", "ticker", ticker)
		}
	}

	if len(valid) == 0 {
		slog.Warn("no ticker validated, falling back to static allow-list")
		valid = append(valid, r.allow...)
	}

	sort.Strings(valid)
	r.valid.Store(&valid)
	slog.Info("ticker registry refreshed", "valid", len(valid), "allowed", len(r.allow))
	return ctx.Err()
}

// List returns the valid set in lexicographic order.
func (r *Registry) List() []string {
	snapshot := r.valid.Load()
	if snapshot == nil {
		return nil
	}
	out := make([]string, len(*snapshot))
	copy(out, *snapshot)
	return out
}

// IsKnown checks allow-list membership, independent of backing-data
// validity. Used for input validation on every ticker parameter.
func (r *Registry) IsKnown(ticker string) bool {
	_, ok := r.allowSet[strings.ToUpper(ticker)]
	return ok
}
