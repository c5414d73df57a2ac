// Package notify turns cart events into the short messages the storefront
// shows to shoppers.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/strivehardest/celestial-shopping/internal/domain"
)

// Message returns the shopper-facing text for ev, or "" when the event has
// no message.
func Message(ev domain.Event) string {
	switch ev.Kind {
	case domain.EventItemAdded:
		return fmt.Sprintf("%s added to cart", ev.Name)
	case domain.EventQuantityUpdated:
		return fmt.Sprintf("Updated %s quantity", ev.Name)
	case domain.EventItemRemoved:
		return fmt.Sprintf("%s removed from cart", ev.Name)
	case domain.EventCartCleared:
		return "Cart cleared"
	default:
		return ""
	}
}

// NewLogListener returns a listener that records every message at info level.
func NewLogListener(logger *slog.Logger) func(domain.Event) {
	return func(ev domain.Event) {
		msg := Message(ev)
		if msg == "" {
			return
		}

		logger.LogAttrs(context.Background(), slog.LevelInfo, msg,
			slog.String("event_id", ev.ID.String()),
			slog.String("kind", string(ev.Kind)),
			slog.Int64("product_id", int64(ev.ProductID)),
			slog.Int("quantity", ev.Quantity),
		)
	}
}

// FormatMoney renders m as "GHS 66.50".
func FormatMoney(m domain.Money) string {
	return fmt.Sprintf("%s %s", m.Currency, m.Amount.StringFixed(2))
}
