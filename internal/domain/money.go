package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// ParseMoney parses a catalog price such as "10.00". Negative and
// non-numeric amounts, and amounts finer than the currency's minor unit,
// are rejected with ErrInvalidPrice.
func ParseMoney(amount string, unit currency.Unit) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("price[%s]: %w", amount, ErrInvalidPrice)
	}
	if d.IsNegative() {
		return Money{}, fmt.Errorf("price[%s] is negative: %w", amount, ErrInvalidPrice)
	}

	scale, _ := currency.Standard.Rounding(unit)
	if !d.Equal(d.Round(int32(scale))) {
		return Money{}, fmt.Errorf("price[%s] has more than %d decimals: %w", amount, scale, ErrInvalidPrice)
	}

	return Money{Amount: d, Currency: unit}, nil
}

func ZeroMoney(unit currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: unit}
}

// Mul returns m multiplied by an integer quantity.
func (m Money) Mul(quantity int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(quantity))), Currency: m.Currency}
}

// Add sums two amounts of the same currency; the receiver's currency wins.
func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

func (m Money) Equal(other Money) bool {
	return m.Currency.String() == other.Currency.String() && m.Amount.Equal(other.Amount)
}
