package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/cart"
)

type entry struct {
	store    *cart.Store
	lastSeen time.Time
	holds    int
}

// StoreFactory builds the cart store for a new session
type StoreFactory func(logger *zap.Logger) *cart.Store

// Option configures a Registry
type Option func(*Registry)

// WithStoreFactory overrides how session carts are created
func WithStoreFactory(factory StoreFactory) Option {
	return func(r *Registry) {
		r.newStore = factory
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// Registry keeps one cart store per shopper session, in memory only
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entry
	ttl      time.Duration
	newStore StoreFactory
	now      func() time.Time
	logger   *zap.Logger
}

// NewRegistry creates a new session registry. Sessions idle longer than ttl
// are dropped by Sweep.
func NewRegistry(ttl time.Duration, logger *zap.Logger, opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[uuid.UUID]*entry),
		ttl:      ttl,
		newStore: func(logger *zap.Logger) *cart.Store {
			return cart.New(cart.WithLogger(logger))
		},
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create starts a new session with an empty cart
func (r *Registry) Create() (uuid.UUID, *cart.Store) {
	id := uuid.New()
	logger := r.logger.With(zap.String("session_id", id.String()))

	store := r.newStore(logger)
	store.Subscribe(func(s cart.Snapshot) {
		logger.Info("Cart changed",
			zap.Uint64("version", s.Version),
			zap.Int("item_count", s.ItemCount),
			zap.String("total", s.Total.String()),
		)
	})

	r.mu.Lock()
	r.sessions[id] = &entry{store: store, lastSeen: r.now()}
	r.mu.Unlock()

	logger.Debug("Session created")
	return id, store
}

// Get returns the cart of a live session and marks it as seen
func (r *Registry) Get(id uuid.UUID) (*cart.Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.store, true
}

// Resolve returns the session named by rawID, or a new session when rawID is
// empty, malformed or unknown. created reports which case applied.
func (r *Registry) Resolve(rawID string) (id uuid.UUID, store *cart.Store, created bool) {
	if rawID != "" {
		if parsed, err := uuid.Parse(rawID); err == nil {
			if store, ok := r.Get(parsed); ok {
				return parsed, store, false
			}
		}
	}
	id, store = r.Create()
	return id, store, true
}

// Hold keeps a session alive until release is called, however long it stays
// idle. It is meant for long-lived connections such as event streams. Holding
// an unknown session is a no-op. release is safe to call more than once.
func (r *Registry) Hold(id uuid.UUID) (release func()) {
	r.mu.Lock()
	e, ok := r.sessions[id]
	if ok {
		e.holds++
	}
	r.mu.Unlock()

	if !ok {
		return func() {}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			e.holds--
			e.lastSeen = r.now()
			r.mu.Unlock()
		})
	}
}

// Delete ends a session, discarding its cart
func (r *Registry) Delete(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle since before now-ttl and returns how many were
// dropped. Held sessions are kept.
func (r *Registry) Sweep(now time.Time) int {
	cutoff := now.Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	expired := 0
	for id, e := range r.sessions {
		if e.holds == 0 && e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			expired++
		}
	}
	if expired > 0 {
		r.logger.Info("Expired idle sessions", zap.Int("count", expired), zap.Int("remaining", len(r.sessions)))
	}
	return expired
}

// Run sweeps every interval until ctx is done
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Sweep(r.now())
		case <-ctx.Done():
			return
		}
	}
}
