package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/strivehardest/celestial-shopping/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_cart_items.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func randomCart(n int) domain.Cart {
	unit := randomCurrency()

	var items []domain.LineItem
	for i := range n {
		items = append(items, domain.LineItem{
			ProductID: domain.ProductID(i + 1 + gofakeit.IntRange(0, 1000)*100),
			Name:      gofakeit.ProductName(),
			Price: domain.Money{
				Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
				Currency: unit,
			},
			Image:    gofakeit.URL(),
			Slug:     gofakeit.Word(),
			Category: gofakeit.ProductCategory(),
			Quantity: gofakeit.IntRange(1, 10),
		})
	}

	return domain.Cart{Items: items}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

func assertCart(t *testing.T, expected, actual domain.Cart) {
	t.Helper()

	diff := cmp.Diff(expected.Items, actual.Items)
	assert.Empty(t, diff)
}
