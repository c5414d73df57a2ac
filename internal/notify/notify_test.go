package notify_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/strivehardest/celestial-shopping/internal/domain"
	"github.com/strivehardest/celestial-shopping/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		kind domain.EventKind
		want string
	}{
		{domain.EventItemAdded, "Shea Butter added to cart"},
		{domain.EventQuantityUpdated, "Updated Shea Butter quantity"},
		{domain.EventItemRemoved, "Shea Butter removed from cart"},
		{domain.EventCartCleared, "Cart cleared"},
		{domain.EventKind("UNKNOWN"), ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got := notify.Message(domain.Event{Kind: tt.kind, Name: "Shea Butter"})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogListener(t *testing.T) {
	var buf bytes.Buffer
	listener := notify.NewLogListener(slog.New(slog.NewJSONHandler(&buf, nil)))

	id := uuid.New()
	listener(domain.Event{ID: id, Kind: domain.EventItemAdded, ProductID: 3, Name: "Cocoa", Quantity: 2})
	listener(domain.Event{Kind: domain.EventKind("UNKNOWN")})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))

	assert.Equal(t, "Cocoa added to cart", rec["msg"])
	assert.Equal(t, id.String(), rec["event_id"])
	assert.Equal(t, "ITEM_ADDED", rec["kind"])
	assert.EqualValues(t, 3, rec["product_id"])
	assert.EqualValues(t, 2, rec["quantity"])
}

func TestFormatMoney(t *testing.T) {
	m := domain.Money{Amount: decimal.RequireFromString("66.5"), Currency: currency.MustParseISO("GHS")}

	assert.Equal(t, "GHS 66.50", notify.FormatMoney(m))
}
