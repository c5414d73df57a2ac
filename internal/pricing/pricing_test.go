package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/strivehardest/celestial-shopping/internal/domain"
	"github.com/strivehardest/celestial-shopping/internal/pricing"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func ghs(amount string) domain.Money {
	return domain.Money{Amount: decimal.RequireFromString(amount), Currency: currency.MustParseISO("GHS")}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		subtotal  string
		wantTax   string
		wantTotal string
	}{
		{name: "round amount", subtotal: "66.50", wantTax: "6.65", wantTotal: "73.15"},
		{name: "tax is rounded", subtotal: "10.05", wantTax: "1.01", wantTotal: "11.06"},
		{name: "empty cart", subtotal: "0", wantTax: "0", wantTotal: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pricing.Summarize(ghs(tt.subtotal))

			assert.True(t, s.Subtotal.Equal(ghs(tt.subtotal)))
			assert.True(t, s.Tax.Equal(ghs(tt.wantTax)), "tax %s", s.Tax.Amount)
			assert.True(t, s.Total.Equal(ghs(tt.wantTotal)), "total %s", s.Total.Amount)
		})
	}
}

func TestQuoteCheckout(t *testing.T) {
	tests := []struct {
		region       string
		wantShipping string
		wantTotal    string
	}{
		{region: "Greater Accra", wantShipping: "20", wantTotal: "86.5"},
		{region: "Ashanti", wantShipping: "50", wantTotal: "116.5"},
		{region: "Central", wantShipping: "70", wantTotal: "136.5"},
		{region: "Upper East", wantShipping: "100", wantTotal: "166.5"},
		{region: "", wantShipping: "15", wantTotal: "81.5"},
		{region: "Lagos", wantShipping: "15", wantTotal: "81.5"},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			q := pricing.QuoteCheckout(ghs("66.50"), tt.region)

			assert.Equal(t, tt.region, q.Region)
			assert.True(t, q.Shipping.Equal(ghs(tt.wantShipping)), "shipping %s", q.Shipping.Amount)
			assert.True(t, q.Total.Equal(ghs(tt.wantTotal)), "total %s", q.Total.Amount)
		})
	}
}
