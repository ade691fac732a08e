package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/cart"
	"github.com/jafarshop/storefront/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestRegistry_CreateAndGet(t *testing.T) {
	registry := NewRegistry(time.Minute, zap.NewNop())

	id, store := registry.Create()
	got, ok := registry.Get(id)

	require.True(t, ok)
	assert.Same(t, store, got)
	assert.Equal(t, 1, registry.Len())

	_, ok = registry.Get(uuid.New())
	assert.False(t, ok)
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	registry := NewRegistry(time.Minute, zap.NewNop())

	_, a := registry.Create()
	_, b := registry.Create()
	a.AddItem(domain.Product{ID: 1, Price: 10})

	assert.Len(t, a.Items(), 1)
	assert.Empty(t, b.Items())
}

func TestRegistry_Resolve(t *testing.T) {
	registry := NewRegistry(time.Minute, zap.NewNop())
	id, store := registry.Create()

	gotID, gotStore, created := registry.Resolve(id.String())
	assert.False(t, created)
	assert.Equal(t, id, gotID)
	assert.Same(t, store, gotStore)

	for _, raw := range []string{"", "not-a-uuid", uuid.New().String()} {
		gotID, gotStore, created = registry.Resolve(raw)
		assert.True(t, created, raw)
		assert.NotEqual(t, id, gotID)
		assert.NotSame(t, store, gotStore)
	}
	assert.Equal(t, 4, registry.Len())
}

func TestRegistry_Sweep(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	registry := NewRegistry(10*time.Minute, zap.NewNop(), WithClock(clock.Now))

	idle, _ := registry.Create()
	clock.now = clock.now.Add(8 * time.Minute)
	active, _ := registry.Create()
	clock.now = clock.now.Add(5 * time.Minute)
	_, ok := registry.Get(active)
	require.True(t, ok)

	expired := registry.Sweep(clock.now)

	assert.Equal(t, 1, expired)
	_, ok = registry.Get(idle)
	assert.False(t, ok)
	_, ok = registry.Get(active)
	assert.True(t, ok)
}

func TestRegistry_Hold(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	registry := NewRegistry(10*time.Minute, zap.NewNop(), WithClock(clock.Now))

	id, _ := registry.Create()
	release := registry.Hold(id)

	// a held session outlives any idle period
	clock.now = clock.now.Add(time.Hour)
	assert.Equal(t, 0, registry.Sweep(clock.now))
	assert.Equal(t, 1, registry.Len())

	// releasing counts as activity
	release()
	release()
	clock.now = clock.now.Add(5 * time.Minute)
	assert.Equal(t, 0, registry.Sweep(clock.now))

	clock.now = clock.now.Add(6 * time.Minute)
	assert.Equal(t, 1, registry.Sweep(clock.now))
	assert.Equal(t, 0, registry.Len())

	registry.Hold(uuid.New())()
}

func TestRegistry_Delete(t *testing.T) {
	registry := NewRegistry(time.Minute, zap.NewNop())
	id, _ := registry.Create()

	registry.Delete(id)
	registry.Delete(id)

	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_WithStoreFactory(t *testing.T) {
	registry := NewRegistry(time.Minute, zap.NewNop(), WithStoreFactory(func(*zap.Logger) *cart.Store {
		return cart.Disabled()
	}))

	_, store := registry.Create()
	assert.True(t, store.IsDisabled())
}

func TestRegistry_RunStopsOnCancel(t *testing.T) {
	registry := NewRegistry(time.Millisecond, zap.NewNop())
	registry.Create()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		registry.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return registry.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
