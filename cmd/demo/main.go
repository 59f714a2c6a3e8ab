package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	cartdomain "github.com/microshop/checkout/internal/cart/domain"
	catalogapp "github.com/microshop/checkout/internal/catalog/app"
	catalogdomain "github.com/microshop/checkout/internal/catalog/domain"
	"github.com/microshop/checkout/internal/catalog/infra/memory"
	checkoutapp "github.com/microshop/checkout/internal/checkout/app"
	customerdomain "github.com/microshop/checkout/internal/customer/domain"
	"github.com/microshop/checkout/pkg/config"
	"github.com/microshop/checkout/pkg/logger"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "demo", Env: cfg.AppEnv, Level: cfg.LogLevel})

	ctx := context.Background()

	repo := memory.NewProductRepo()
	catalog := catalogapp.NewService(repo)
	checkout := checkoutapp.NewService(os.Stdout)

	cheese, err := catalog.CreateShippable(ctx, "Cheese", decimal.NewFromInt(100), 10, false, decimal.NewFromFloat(0.2))
	if err != nil {
		fatal(log, err)
	}
	biscuits, err := catalog.CreateShippable(ctx, "Biscuits", decimal.NewFromInt(150), 5, false, decimal.NewFromFloat(0.7))
	if err != nil {
		fatal(log, err)
	}
	scratchCard, err := catalog.CreateProduct(ctx, "Scratch Card", decimal.NewFromInt(50), 20, false)
	if err != nil {
		fatal(log, err)
	}

	ali, err := customerdomain.New("Ali", decimal.NewFromInt(1000))
	if err != nil {
		fatal(log, err)
	}

	cart := cartdomain.NewCart()
	mustAdd(log, cart, cheese, 2)
	mustAdd(log, cart, biscuits, 1)
	mustAdd(log, cart, scratchCard, 1)

	if _, err := checkout.Checkout(ali, cart); err != nil {
		fatal(log, err)
	}
	log.Info("checkout complete", slog.String("customer", ali.Name), slog.String("balance", ali.Balance.String()))

	fmt.Println("\nTesting empty cart:")
	if _, err := checkout.Checkout(ali, cartdomain.NewCart()); err != nil {
		fatal(log, err)
	}

	fmt.Println("\nTesting expired product:")
	expiredCheese, err := catalog.CreateShippable(ctx, "Expired Cheese", decimal.NewFromInt(100), 10, true, decimal.NewFromFloat(0.2))
	if err != nil {
		fatal(log, err)
	}
	cartWithExpired := cartdomain.NewCart()
	mustAdd(log, cartWithExpired, expiredCheese, 1)
	if _, err := checkout.Checkout(ali, cartWithExpired); err != nil {
		reportExpected(err)
	}

	fmt.Println("\nTesting out of stock:")
	milk, err := catalog.CreateShippable(ctx, "Milk", decimal.NewFromInt(50), 1, false, decimal.NewFromFloat(0.1))
	if err != nil {
		fatal(log, err)
	}
	if err := cartdomain.NewCart().Add(milk, 2); err != nil {
		reportExpected(err)
	}

	fmt.Println("\nTesting invalid inputs:")
	if err := cart.Add(nil, 1); err != nil {
		reportExpected(err)
	}
	if err := cart.Add(cheese, 0); err != nil {
		reportExpected(err)
	}
	if _, err := checkout.Checkout(nil, cart); err != nil {
		reportExpected(err)
	}
	if _, err := catalog.CreateShippable(ctx, "", decimal.NewFromInt(100), 10, false, decimal.NewFromFloat(0.2)); err != nil {
		reportExpected(err)
	}
	if _, err := catalog.CreateShippable(ctx, "Invalid", decimal.NewFromInt(-100), 10, false, decimal.NewFromFloat(0.2)); err != nil {
		reportExpected(err)
	}
	if _, err := catalog.CreateShippable(ctx, "Invalid", decimal.NewFromInt(100), 10, false, decimal.NewFromFloat(-0.2)); err != nil {
		reportExpected(err)
	}
	if _, err := customerdomain.New("", decimal.NewFromInt(1000)); err != nil {
		reportExpected(err)
	}
}

func mustAdd(log *slog.Logger, cart *cartdomain.Cart, p *catalogdomain.Product, qty int64) {
	if err := cart.Add(p, qty); err != nil {
		fatal(log, err)
	}
}

func reportExpected(err error) {
	fmt.Println("Caught expected error:", err)
}

func fatal(log *slog.Logger, err error) {
	log.Error("demo failed", slog.Any("err", err))
	os.Exit(1)
}
