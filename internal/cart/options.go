package cart

import (
	"log/slog"
	"time"

	"golang.org/x/text/currency"
)

const DefaultKey = "celestial-cart"

// DefaultCurrency is the Ghana cedi the storefront prices in.
var DefaultCurrency = currency.MustParseISO("GHS")

type Option func(*Store)

// WithKey sets the namespace key the cart is persisted under.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

func WithCurrency(unit currency.Unit) Option {
	return func(s *Store) {
		s.currency = unit
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithClock overrides the time source used to stamp events.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}
