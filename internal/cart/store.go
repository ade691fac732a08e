package cart

import (
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
)

// Snapshot is an immutable view of a cart after a mutation
type Snapshot struct {
	Version   uint64
	Items     []domain.CartLineItem
	ItemCount int
	Total     decimal.Decimal
}

// Observer is called after every mutation that changed the cart
type Observer func(Snapshot)

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used by the store
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Store owns the line items of a single shopper's cart.
// All reads and writes go through its methods; items handed out are copies.
type Store struct {
	mu        sync.Mutex
	items     []domain.CartLineItem
	version   uint64
	observers map[uint64]Observer
	nextObsID uint64
	disabled  bool
	logger    *zap.Logger
}

// New creates an empty cart store
func New(opts ...Option) *Store {
	s := &Store{
		observers: make(map[uint64]Observer),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Disabled returns a store that accepts every call, never holds items and
// never notifies. Use it where the cart is switched off on purpose.
func Disabled() *Store {
	s := New()
	s.disabled = true
	return s
}

// IsDisabled reports whether the store was created with Disabled
func (s *Store) IsDisabled() bool {
	return s.disabled
}

// AddItem adds one unit of product. A product already in the cart only has
// its quantity incremented; its stored fields (price included) are kept.
func (s *Store) AddItem(product domain.Product) {
	if s.disabled {
		return
	}

	s.mu.Lock()
	if i := s.indexOf(product.ID); i >= 0 {
		s.items[i].Quantity++
	} else {
		s.items = append(s.items, domain.CartLineItem{Product: product, Quantity: 1})
	}
	snap, observers := s.commit()
	s.mu.Unlock()

	s.logger.Debug("Cart item added", zap.Int("product_id", product.ID), zap.Int("item_count", snap.ItemCount))
	notify(observers, snap)
}

// RemoveItem removes the line item for productID. Removing an absent id is a no-op.
func (s *Store) RemoveItem(productID int) {
	if s.disabled {
		return
	}

	s.mu.Lock()
	i := s.indexOf(productID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.removeAt(i)
	snap, observers := s.commit()
	s.mu.Unlock()

	s.logger.Debug("Cart item removed", zap.Int("product_id", productID))
	notify(observers, snap)
}

// SetQuantity replaces the quantity of an existing line item.
// quantity <= 0 removes the item; an absent id is a no-op.
func (s *Store) SetQuantity(productID, quantity int) {
	if s.disabled {
		return
	}

	s.mu.Lock()
	i := s.indexOf(productID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	if quantity <= 0 {
		s.removeAt(i)
	} else {
		s.items[i].Quantity = quantity
	}
	snap, observers := s.commit()
	s.mu.Unlock()

	s.logger.Debug("Cart quantity set", zap.Int("product_id", productID), zap.Int("quantity", quantity))
	notify(observers, snap)
}

// Clear empties the cart
func (s *Store) Clear() {
	if s.disabled {
		return
	}

	s.mu.Lock()
	s.items = nil
	snap, observers := s.commit()
	s.mu.Unlock()

	s.logger.Debug("Cart cleared")
	notify(observers, snap)
}

// Drain empties the cart and returns what it held, in one step. Observers see
// the emptied cart once. Draining an empty cart changes nothing and returns an
// empty snapshot.
func (s *Store) Drain() Snapshot {
	if s.disabled {
		return Snapshot{Total: decimal.Zero}
	}

	s.mu.Lock()
	drained := s.snapshot()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return drained
	}
	s.items = nil
	snap, observers := s.commit()
	s.mu.Unlock()

	s.logger.Debug("Cart drained", zap.Int("item_count", drained.ItemCount))
	notify(observers, snap)
	return drained
}

// Items returns a copy of the current line items in insertion order
func (s *Store) Items() []domain.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItems()
}

// ItemCount returns the sum of all line item quantities
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return itemCount(s.items)
}

// Total returns the sum of price * quantity over all line items, unrounded
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return total(s.items)
}

// Snapshot returns the current items and derived values in one consistent read
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe registers fn to be called after every effective mutation.
// The returned function removes the observer and is safe to call more than once.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	if s.disabled {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

// commit bumps the version and captures what must be delivered once the lock
// is released. Caller holds s.mu.
func (s *Store) commit() (Snapshot, []Observer) {
	s.version++
	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	return s.snapshot(), observers
}

func (s *Store) snapshot() Snapshot {
	return Snapshot{
		Version:   s.version,
		Items:     s.copyItems(),
		ItemCount: itemCount(s.items),
		Total:     total(s.items),
	}
}

func (s *Store) indexOf(productID int) int {
	for i := range s.items {
		if s.items[i].ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) removeAt(i int) {
	s.items = append(s.items[:i], s.items[i+1:]...)
}

func (s *Store) copyItems() []domain.CartLineItem {
	items := make([]domain.CartLineItem, len(s.items))
	copy(items, s.items)
	return items
}

func itemCount(items []domain.CartLineItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func total(items []domain.CartLineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}

func notify(observers []Observer, snap Snapshot) {
	for _, fn := range observers {
		fn(snap)
	}
}
