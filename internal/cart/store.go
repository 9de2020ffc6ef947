// Package cart implements the session-scoped shopping cart: a list of
// (product, quantity) line items with derived totals and change
// notifications for dependent UI.
package cart

import (
	"sync"

	"github.com/charcuterie-certains/storefront-api/internal/models"
)

// Item is one cart line: a catalog product and how many units of it.
type Item struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Store holds the line items of one storefront session. At most one line
// exists per product id and every quantity is >= 1. Methods are safe for
// concurrent use; subscribers are notified after each mutation completes.
type Store struct {
	mu      sync.Mutex
	items   []Item
	subs    map[int]func()
	nextSub int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func())}
}

// Subscribe registers fn to run after every cart mutation and returns the
// matching unsubscribe function.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Add merges quantity into the existing line for the product, or appends a
// new line. Non-positive quantities are ignored; the HTTP layer rejects them
// before they get here.
func (s *Store) Add(product models.Product, quantity int) {
	if quantity < 1 {
		return
	}
	s.mu.Lock()
	merged := false
	for i, item := range s.items {
		if item.Product.ID == product.ID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, Item{Product: product, Quantity: quantity})
	}
	s.unlockAndNotify()
}

// UpdateQuantity sets the quantity of the line for productID. A quantity of
// zero or less removes the line. Unknown product ids are a no-op: updating
// never inserts.
func (s *Store) UpdateQuantity(productID, quantity int) {
	s.mu.Lock()
	if quantity <= 0 {
		s.removeLocked(productID)
	} else {
		for i, item := range s.items {
			if item.Product.ID == productID {
				s.items[i].Quantity = quantity
				break
			}
		}
	}
	s.unlockAndNotify()
}

// Remove deletes the line for productID. Removing an absent id is a no-op.
func (s *Store) Remove(productID int) {
	s.mu.Lock()
	s.removeLocked(productID)
	s.unlockAndNotify()
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.unlockAndNotify()
}

func (s *Store) removeLocked(productID int) {
	for i, item := range s.items {
		if item.Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// unlockAndNotify releases the store lock and then runs the subscribers, so
// a subscriber may call back into the store.
func (s *Store) unlockAndNotify() {
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Items returns a snapshot copy of the current line items.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Total returns the sum of price x quantity over all line items.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities over all line items.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}
