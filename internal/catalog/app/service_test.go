package app_test

import (
	"context"
	"testing"

	"github.com/microshop/checkout/internal/catalog/app"
	"github.com/microshop/checkout/internal/catalog/infra/memory"
	"github.com/microshop/checkout/internal/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCatalogService(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateProduct_StoresAndAssignsID", func(t *testing.T) {
		svc := app.NewService(memory.NewProductRepo())

		p, err := svc.CreateProduct(ctx, "Scratch Card", decimal.NewFromInt(50), 20, false)
		require.NoError(t, err)
		require.NotEmpty(t, p.ID)

		got, err := svc.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		require.Same(t, p, got)
	})

	t.Run("CreateProduct_FailsOnInvalidInput", func(t *testing.T) {
		svc := app.NewService(memory.NewProductRepo())

		_, err := svc.CreateProduct(ctx, "   ", decimal.NewFromInt(50), 20, false)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)

		_, err = svc.CreateProduct(ctx, "Scratch Card", decimal.NewFromInt(-50), 20, false)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("CreateShippable_FailsOnNegativeWeight", func(t *testing.T) {
		svc := app.NewService(memory.NewProductRepo())

		_, err := svc.CreateShippable(ctx, "Cheese", decimal.NewFromInt(100), 10, false, decimal.NewFromFloat(-0.2))
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("GetProduct_FailsOnBlankID", func(t *testing.T) {
		svc := app.NewService(memory.NewProductRepo())

		_, err := svc.GetProduct(ctx, "   ")
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("GetProduct_FailsOnUnknownID", func(t *testing.T) {
		svc := app.NewService(memory.NewProductRepo())

		_, err := svc.GetProduct(ctx, "missing")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("GetProduct_ObservesStockReduction", func(t *testing.T) {
		svc := app.NewService(memory.NewProductRepo())

		p, err := svc.CreateShippable(ctx, "Cheese", decimal.NewFromInt(100), 10, false, decimal.NewFromFloat(0.2))
		require.NoError(t, err)
		require.NoError(t, p.Reduce(4))

		got, err := svc.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, int64(6), got.Stock)
	})

	t.Run("ListProducts_KeepsRegistrationOrder", func(t *testing.T) {
		svc := app.NewService(memory.NewProductRepo())

		_, err := svc.CreateShippable(ctx, "Cheese", decimal.NewFromInt(100), 10, false, decimal.NewFromFloat(0.2))
		require.NoError(t, err)
		_, err = svc.CreateShippable(ctx, "Biscuits", decimal.NewFromInt(150), 5, false, decimal.NewFromFloat(0.7))
		require.NoError(t, err)
		_, err = svc.CreateProduct(ctx, "Scratch Card", decimal.NewFromInt(50), 20, false)
		require.NoError(t, err)

		products, err := svc.ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 3)
		require.Equal(t, "Cheese", products[0].Name)
		require.Equal(t, "Biscuits", products[1].Name)
		require.Equal(t, "Scratch Card", products[2].Name)
	})
}
