package repository

import (
	"context"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/strivehardest/celestial-shopping/internal/db"
	"github.com/strivehardest/celestial-shopping/internal/domain"
	"github.com/strivehardest/celestial-shopping/internal/port"
	"golang.org/x/text/currency"
)

// postgresCartRepository stores each line item as a cart_items row.
type postgresCartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewPostgresCart(pool *pgxpool.Pool) port.CartRepository {
	return &postgresCartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewPostgresCartWithTx(tx pgx.Tx) port.CartRepository {
	return &postgresCartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *postgresCartRepository) Load(ctx context.Context, key string) (domain.Cart, error) {
	if key == "" {
		return domain.Cart{}, fmt.Errorf("key is empty")
	}

	rows, err := r.q.GetCart(ctx, key)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	if len(rows) == 0 {
		return domain.Cart{}, domain.ErrCartNotFound
	}

	items, err := mapGetCartRowsToDomain(rows)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	return domain.Cart{Items: items}, nil
}

// Save replaces every row of the cart in a single transaction.
func (r *postgresCartRepository) Save(ctx context.Context, key string, cart domain.Cart) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (int, error) {
		if _, err := q.DeleteCart(ctx, key); err != nil {
			return 0, fmt.Errorf("q.DeleteCart: %w", err)
		}

		for i, item := range cart.Items {
			if err := q.AddItem(ctx, mapLineItemToParams(key, i, item)); err != nil {
				return 0, fmt.Errorf("q.AddItem: %w", err)
			}
		}

		return len(cart.Items), nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func mapLineItemToParams(key string, position int, item domain.LineItem) db.AddItemParams {
	return db.AddItemParams{
		CartKey:       key,
		ProductID:     int64(item.ProductID),
		Position:      int32(position),
		Name:          item.Name,
		PriceAmount:   item.Price.Amount,
		PriceCurrency: item.Price.Currency.String(),
		Image:         item.Image,
		Slug:          item.Slug,
		Category:      item.Category,
		Quantity:      int32(item.Quantity),
	}
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.LineItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.LineItem{
		ProductID: domain.ProductID(row.ProductID),
		Name:      row.Name,
		Price:     domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Image:     row.Image,
		Slug:      row.Slug,
		Category:  row.Category,
		Quantity:  int(row.Quantity),
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.LineItem, error) {
	var items []domain.LineItem

	for _, row := range rows {
		item, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
