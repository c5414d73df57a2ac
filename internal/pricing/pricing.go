// Package pricing derives the order summaries shown on the cart and
// checkout pages from a cart subtotal.
package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/strivehardest/celestial-shopping/internal/domain"
)

// TaxRate is applied to the cart subtotal on the cart page.
var TaxRate = decimal.RequireFromString("0.10")

// DefaultShippingFee applies to regions missing from ShippingFees.
var DefaultShippingFee = decimal.NewFromInt(15)

// ShippingFees lists the flat delivery fee per Ghanaian region.
var ShippingFees = map[string]decimal.Decimal{
	"Greater Accra": decimal.NewFromInt(20),
	"Ashanti":       decimal.NewFromInt(50),
	"Western":       decimal.NewFromInt(50),
	"Volta":         decimal.NewFromInt(50),
	"Central":       decimal.NewFromInt(70),
	"Western North": decimal.NewFromInt(100),
	"Oti":           decimal.NewFromInt(100),
	"Eastern":       decimal.NewFromInt(100),
	"Bono East":     decimal.NewFromInt(100),
	"Ahafo":         decimal.NewFromInt(100),
	"Bono":          decimal.NewFromInt(100),
	"Savannah":      decimal.NewFromInt(100),
	"Upper West":    decimal.NewFromInt(100),
	"North East":    decimal.NewFromInt(100),
	"Northern":      decimal.NewFromInt(100),
	"Upper East":    decimal.NewFromInt(100),
}

type Summary struct {
	Subtotal domain.Money
	Tax      domain.Money
	Total    domain.Money
}

// Summarize computes the cart page summary: tax at TaxRate rounded to two
// places, added on top of the subtotal.
func Summarize(subtotal domain.Money) Summary {
	tax := domain.Money{
		Amount:   subtotal.Amount.Mul(TaxRate).Round(2),
		Currency: subtotal.Currency,
	}

	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

type Quote struct {
	Region   string
	Subtotal domain.Money
	Shipping domain.Money
	Total    domain.Money
}

func ShippingFee(region string) decimal.Decimal {
	if fee, ok := ShippingFees[region]; ok {
		return fee
	}
	return DefaultShippingFee
}

// QuoteCheckout adds the region's shipping fee to subtotal.
func QuoteCheckout(subtotal domain.Money, region string) Quote {
	shipping := domain.Money{Amount: ShippingFee(region), Currency: subtotal.Currency}

	return Quote{
		Region:   region,
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}
