// SPDX-License-Identifier: MIT

package symmetry

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Registry interns one Store per (tensor name, Structure). It replaces a
// process-wide cache: callers own the Registry and pass it where needed.
// All methods are safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	stores map[registryKey]*Store
	order  []registryKey // insertion order, for deterministic listing
	opts   []Option
	logger *zap.Logger
}

type registryKey struct {
	name      string
	structure string // Structure.Key()
}

// Entry is one interned store as reported by Registry.Entries.
type Entry struct {
	Name  string
	Store *Store
}

// NewRegistry creates an empty registry; opts are forwarded to every Store
// it creates.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		stores: make(map[registryKey]*Store),
		opts:   opts,
		logger: gatherOptions(opts...).logger,
	}
}

// Store returns the store for name and st, creating an empty one on first use.
// Complexity: O(n) for the structure key, amortized O(1) lookup.
func (r *Registry) Store(name string, st Structure) *Store {
	k := registryKey{name: name, structure: st.Key()}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[k]; ok {
		return s
	}
	s := NewStore(st, r.opts...)
	r.stores[k] = s
	r.order = append(r.order, k)
	r.logger.Debug("symmetry store created", zap.String("tensor", name), zap.Stringer("structure", st))

	return s
}

// Lookup returns an existing store without creating one.
func (r *Registry) Lookup(name string, st Structure) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stores[registryKey{name: name, structure: st.Key()}]

	return s, ok
}

// Len returns the number of interned stores.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.stores)
}

// Entries lists interned stores ordered by tensor name, then creation order.
func (r *Registry) Entries() []Entry {
	r.mu.Lock()
	out := make([]Entry, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, Entry{Name: k.name, Store: r.stores[k]})
	}
	r.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Warm computes the diff-id partition of every store in parallel so later
// readers hit the cache. It stops early when ctx is cancelled and returns
// ctx's error.
func (r *Registry) Warm(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, e := range r.Entries() {
		s := e.Store
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_ = s.DiffIDs()
			return nil
		})
	}

	return g.Wait()
}
