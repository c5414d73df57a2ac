// Package snapshot encodes carts into the textual record stored by the
// key/value backends. The layout mirrors the storefront's browser record:
//
//	{"state":{"items":[...]},"version":0}
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/strivehardest/celestial-shopping/internal/domain"
	"golang.org/x/text/currency"
)

const Version = 0

var ErrCorrupt = errors.New("corrupt cart snapshot")

type record struct {
	State   state `json:"state"`
	Version int   `json:"version"`
}

type state struct {
	Items []item `json:"items"`
}

type item struct {
	ID       domain.ProductID `json:"id"`
	Name     string           `json:"name"`
	Price    string           `json:"price"`
	Currency string           `json:"currency"`
	Image    string           `json:"image,omitempty"`
	Slug     string           `json:"slug,omitempty"`
	Category string           `json:"category,omitempty"`
	Quantity int              `json:"quantity"`
}

func Encode(cart domain.Cart) ([]byte, error) {
	rec := record{
		State:   state{Items: make([]item, 0, len(cart.Items))},
		Version: Version,
	}

	for _, li := range cart.Items {
		rec.State.Items = append(rec.State.Items, item{
			ID:       li.ProductID,
			Name:     li.Name,
			Price:    li.Price.Amount.String(),
			Currency: li.Price.Currency.String(),
			Image:    li.Image,
			Slug:     li.Slug,
			Category: li.Category,
			Quantity: li.Quantity,
		})
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return data, nil
}

// Decode parses a record produced by Encode. Anything that does not
// describe a valid cart is reported as ErrCorrupt.
func Decode(data []byte) (domain.Cart, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Cart{}, errors.Join(ErrCorrupt, fmt.Errorf("json.Unmarshal: %w", err))
	}

	if rec.Version != Version {
		return domain.Cart{}, fmt.Errorf("version[%d] is not supported: %w", rec.Version, ErrCorrupt)
	}

	items, err := mapItemsToDomain(rec.State.Items)
	if err != nil {
		return domain.Cart{}, errors.Join(ErrCorrupt, err)
	}

	cart := domain.Cart{Items: items}
	if err := cart.Validate(); err != nil {
		return domain.Cart{}, errors.Join(ErrCorrupt, err)
	}

	return cart, nil
}

func mapItemToDomain(it item) (domain.LineItem, error) {
	unit, err := currency.ParseISO(it.Currency)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("currency[%s] is not valid: %w", it.Currency, err)
	}

	amount, err := decimal.NewFromString(it.Price)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("price[%s] is not valid: %w", it.Price, err)
	}

	return domain.LineItem{
		ProductID: it.ID,
		Name:      it.Name,
		Price:     domain.Money{Amount: amount, Currency: unit},
		Image:     it.Image,
		Slug:      it.Slug,
		Category:  it.Category,
		Quantity:  it.Quantity,
	}, nil
}

func mapItemsToDomain(items []item) ([]domain.LineItem, error) {
	var result []domain.LineItem

	for _, it := range items {
		li, err := mapItemToDomain(it)
		if err != nil {
			return nil, fmt.Errorf("mapItemToDomain: %w", err)
		}

		result = append(result, li)
	}

	return result, nil
}
