package cart

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// storageKey is the fixed persistence key. There is no schema migration:
// unreadable state is treated as an empty cart.
const storageKey = "cart"

// Item is one cart line. Prices stay in their display form ("$50");
// arithmetic parses them on demand.
type Item struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Image    string `json:"image,omitempty"`
	Quantity int    `json:"quantity"`
}

// Product is what the storefront hands to Add.
type Product struct {
	ID    int
	Title string
	Price string
	Image string
}

// Store owns the buyer's selected products prior to checkout. Items keep
// insertion order and ids are unique: re-adding a product bumps its
// quantity. Every mutation re-persists the full state.
type Store struct {
	mu      sync.Mutex
	storage Storage
	items   []Item
}

// New hydrates a store from persisted state. Malformed or absent state
// yields an empty cart; hydration never fails.
func New(storage Storage) *Store {
	s := &Store{storage: storage}
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	if s.storage == nil {
		return
	}
	data, err := s.storage.Read(storageKey)
	if err != nil {
		return
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return
		}
	}
	s.items = items
}

// Add appends the product with quantity 1, or increments the quantity of
// an existing line with the same id.
func (s *Store) Add(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			s.persist()
			return
		}
	}
	s.items = append(s.items, Item{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: 1,
	})
	s.persist()
}

// Remove drops the line with the given id. Absent ids are a no-op.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
	s.persist()
}

// UpdateQuantity sets the line's quantity. Non-positive quantities remove
// the line instead of storing an invalid value.
func (s *Store) UpdateQuantity(id, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(id)
		s.persist()
		return
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persist()
}

// Clear empties the cart and deletes persisted state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	if s.storage != nil {
		_ = s.storage.Delete(storageKey)
	}
}

// Items returns a snapshot copy in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of distinct lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Total returns the sum of price times quantity across all lines.
// Unparseable prices contribute zero, so the result is never negative.
// Callers round at display time (StringFixed(2)), not here.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.items {
		price := parsePrice(item.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func (s *Store) removeLocked(id int) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// persist marshals the full state under the fixed key. Mutations report no
// errors, matching the local-storage model, so write failures are dropped.
func (s *Store) persist() {
	if s.storage == nil {
		return
	}
	data, err := json.Marshal(s.items)
	if err != nil {
		return
	}
	_ = s.storage.Write(storageKey, data)
}

func parsePrice(price string) decimal.Decimal {
	trimmed := strings.TrimSpace(price)
	trimmed = strings.TrimPrefix(trimmed, "$")
	value, err := decimal.NewFromString(strings.TrimSpace(trimmed))
	if err != nil || value.IsNegative() {
		return decimal.Zero
	}
	return value
}
