package handlers

import (
	"sync"

	"github.com/jafarshop/storefront/internal/cart"
)

// latestSnapshot keeps only the newest cart snapshot offered to it, so a slow
// event stream skips intermediate states instead of falling behind or losing
// the final one.
type latestSnapshot struct {
	mu    sync.Mutex
	snap  cart.Snapshot
	set   bool
	ready chan struct{}
}

func newLatestSnapshot() *latestSnapshot {
	return &latestSnapshot{ready: make(chan struct{}, 1)}
}

// offer records s unless a newer version is already held
func (l *latestSnapshot) offer(s cart.Snapshot) {
	l.mu.Lock()
	if !l.set || s.Version > l.snap.Version {
		l.snap = s
		l.set = true
	}
	l.mu.Unlock()

	select {
	case l.ready <- struct{}{}:
	default:
	}
}

// newerThan returns the held snapshot if its version is above version
func (l *latestSnapshot) newerThan(version uint64) (cart.Snapshot, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.set || l.snap.Version <= version {
		return cart.Snapshot{}, false
	}
	return l.snap, true
}
