// Package cart holds the shopping-cart store: an explicitly constructed,
// persisted collection of line items that UI code reads from and mutates
// through a small set of operations.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/strivehardest/celestial-shopping/internal/domain"
	"github.com/strivehardest/celestial-shopping/internal/port"
	"golang.org/x/text/currency"
)

var ErrStoreClosed = errors.New("cart store is closed")

// Listener receives committed mutation events. It runs on the goroutine
// that performed the mutation, after the store lock is released.
type Listener func(domain.Event)

type Store struct {
	repo     port.CartRepository
	key      string
	currency currency.Unit
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.Mutex
	cart      domain.Cart
	listeners map[int]Listener
	nextID    int
	closed    bool
}

// New creates a store backed by repo and restores the cart persisted under
// the store key. Missing, corrupt or unreadable state starts an empty cart.
func New(ctx context.Context, repo port.CartRepository, opts ...Option) (*Store, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}

	s := &Store{
		repo:      repo,
		key:       DefaultKey,
		currency:  DefaultCurrency,
		logger:    slog.Default(),
		now:       time.Now,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	s.cart = s.restore(ctx)

	return s, nil
}

func (s *Store) restore(ctx context.Context) domain.Cart {
	cart, err := s.repo.Load(ctx, s.key)
	if err != nil {
		if !errors.Is(err, domain.ErrCartNotFound) {
			s.logger.Warn("cart state discarded", slog.String("key", s.key), slog.Any("err", err))
		}
		return domain.Cart{}
	}

	if err := cart.Validate(); err != nil {
		s.logger.Warn("cart state discarded", slog.String("key", s.key), slog.Any("err", err))
		return domain.Cart{}
	}

	if err := cart.CheckCurrency(s.currency); err != nil {
		s.logger.Warn("cart state discarded", slog.String("key", s.key), slog.Any("err", err))
		return domain.Cart{}
	}

	return cart.Clone()
}

// Close releases the listeners. Further mutations fail with ErrStoreClosed.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	clear(s.listeners)
}

// Subscribe registers l for every later mutation event and returns a
// function that removes it. Nil listeners and subscriptions on a closed
// store are ignored.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l == nil || s.closed {
		return func() {}
	}

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Clone().Items
}

func (s *Store) Total() domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Total(s.currency)
}

func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.ItemCount()
}

func (s *Store) Currency() currency.Unit {
	return s.currency
}

// AddOne adds a single unit of p.
func (s *Store) AddOne(ctx context.Context, p domain.Product) error {
	return s.AddItem(ctx, p, 1)
}

// AddItem adds quantity units of p. An existing line for p.ID has its
// quantity incremented and keeps its original snapshot; otherwise a new
// line is appended.
func (s *Store) AddItem(ctx context.Context, p domain.Product, quantity int) error {
	if p.Name == "" {
		return fmt.Errorf("product[%d] name is empty: %w", p.ID, domain.ErrInvalidProduct)
	}
	if quantity < 1 || quantity > domain.MaxQuantity {
		return fmt.Errorf("quantity[%d]: %w", quantity, domain.ErrInvalidQuantity)
	}

	price, err := domain.ParseMoney(p.Price, s.currency)
	if err != nil {
		return fmt.Errorf("domain.ParseMoney: %w", err)
	}

	return s.mutate(ctx, func(cart *domain.Cart) (domain.Event, bool, error) {
		if i := cart.Index(p.ID); i >= 0 {
			if quantity > domain.MaxQuantity-cart.Items[i].Quantity {
				return domain.Event{}, false, fmt.Errorf("quantity[%d] plus [%d] exceeds %d: %w",
					cart.Items[i].Quantity, quantity, domain.MaxQuantity, domain.ErrInvalidQuantity)
			}

			cart.Items[i].Quantity += quantity
			return s.event(domain.EventQuantityUpdated, cart.Items[i]), true, nil
		}

		item := domain.LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     price,
			Image:     p.Image,
			Slug:      p.Slug,
			Category:  p.Category,
			Quantity:  quantity,
		}
		cart.Items = append(cart.Items, item)

		return s.event(domain.EventItemAdded, item), true, nil
	})
}

// RemoveItem deletes the line for id. Unknown ids are ignored.
func (s *Store) RemoveItem(ctx context.Context, id domain.ProductID) error {
	return s.mutate(ctx, func(cart *domain.Cart) (domain.Event, bool, error) {
		i := cart.Index(id)
		if i < 0 {
			return domain.Event{}, false, nil
		}

		removed := cart.Items[i]
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

		return s.event(domain.EventItemRemoved, removed), true, nil
	})
}

// UpdateQuantity sets the quantity of the line for id. A quantity of zero
// or below removes the line; above MaxQuantity it is rejected. Unknown ids
// are ignored.
func (s *Store) UpdateQuantity(ctx context.Context, id domain.ProductID, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, id)
	}
	if quantity > domain.MaxQuantity {
		return fmt.Errorf("quantity[%d]: %w", quantity, domain.ErrInvalidQuantity)
	}

	return s.mutate(ctx, func(cart *domain.Cart) (domain.Event, bool, error) {
		i := cart.Index(id)
		if i < 0 {
			return domain.Event{}, false, nil
		}

		cart.Items[i].Quantity = quantity

		return s.event(domain.EventQuantityUpdated, cart.Items[i]), true, nil
	})
}

func (s *Store) ClearCart(ctx context.Context) error {
	return s.mutate(ctx, func(cart *domain.Cart) (domain.Event, bool, error) {
		cart.Items = nil

		return s.event(domain.EventCartCleared, domain.LineItem{}), true, nil
	})
}

// mutate applies fn to a copy of the cart, persists the copy and only then
// swaps it in and notifies listeners. fn reports false for a no-op; an error
// from fn leaves the cart untouched.
func (s *Store) mutate(ctx context.Context, fn func(cart *domain.Cart) (domain.Event, bool, error)) error {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}

	next := s.cart.Clone()
	ev, changed, err := fn(&next)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if !changed {
		s.mu.Unlock()
		return nil
	}

	if err := s.repo.Save(ctx, s.key, next); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("repo.Save: %w", err)
	}

	s.cart = next
	listeners := make([]Listener, 0, len(s.listeners))
	for _, id := range slices.Sorted(maps.Keys(s.listeners)) {
		listeners = append(listeners, s.listeners[id])
	}

	s.mu.Unlock()

	for _, l := range listeners {
		l(ev)
	}

	return nil
}

func (s *Store) event(kind domain.EventKind, item domain.LineItem) domain.Event {
	return domain.Event{
		ID:         uuid.New(),
		Kind:       kind,
		ProductID:  item.ProductID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		OccurredAt: s.now(),
	}
}
