package domain

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
)

// MaxQuantity bounds a single line so it fits the INTEGER quantity column.
const MaxQuantity = math.MaxInt32

type ProductID int64

// Product is the catalog snapshot a UI hands to the cart. Price is kept as
// the text the catalog API returned.
type Product struct {
	ID       ProductID
	Name     string
	Price    string
	Image    string
	Slug     string
	Category string
}

type Cart struct {
	Items []LineItem
}

type LineItem struct {
	ProductID ProductID
	Name      string
	Price     Money
	Image     string
	Slug      string
	Category  string
	Quantity  int
}

// Subtotal is price times quantity for a single line.
func (li LineItem) Subtotal() Money {
	return li.Price.Mul(li.Quantity)
}

// Index returns the position of the line holding id, or -1.
func (c Cart) Index(id ProductID) int {
	for i, item := range c.Items {
		if item.ProductID == id {
			return i
		}
	}
	return -1
}

func (c Cart) Total(unit currency.Unit) Money {
	total := ZeroMoney(unit)
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Validate checks the cart invariants: unique product ids, quantity >= 1
// and non-negative prices.
func (c Cart) Validate() error {
	seen := make(map[ProductID]struct{}, len(c.Items))

	for _, item := range c.Items {
		if _, ok := seen[item.ProductID]; ok {
			return fmt.Errorf("product[%d]: %w", item.ProductID, ErrDuplicateProduct)
		}
		seen[item.ProductID] = struct{}{}

		if item.Quantity < 1 || item.Quantity > MaxQuantity {
			return fmt.Errorf("product[%d] quantity[%d]: %w", item.ProductID, item.Quantity, ErrInvalidQuantity)
		}
		if item.Price.Amount.IsNegative() {
			return fmt.Errorf("product[%d] price[%s]: %w", item.ProductID, item.Price.Amount, ErrInvalidPrice)
		}
	}

	return nil
}

// CheckCurrency reports the first line priced in a currency other than unit.
func (c Cart) CheckCurrency(unit currency.Unit) error {
	for _, item := range c.Items {
		if item.Price.Currency.String() != unit.String() {
			return fmt.Errorf("product[%d] currency[%s] want[%s]: %w", item.ProductID, item.Price.Currency, unit, ErrCurrencyMismatch)
		}
	}

	return nil
}

// Clone returns a cart that shares no backing array with c.
func (c Cart) Clone() Cart {
	if c.Items == nil {
		return Cart{}
	}
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}
