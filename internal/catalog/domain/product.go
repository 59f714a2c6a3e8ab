package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/microshop/checkout/internal/errs"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry with mutable stock. The shippable variant
// carries a weight in kilograms and contributes to shipping; the plain
// variant does not. Both live in this one struct so the variant check is a
// field read rather than a type assertion.
type Product struct {
	ID      string
	Name    string
	Price   decimal.Decimal
	Stock   int64
	Expired bool

	shippable bool
	weight    decimal.Decimal
}

// New builds a plain product. Name is trimmed; blank names, negative prices
// and negative stock are rejected.
func New(name string, price decimal.Decimal, stock int64, expired bool) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("product name must not be empty: %w", errs.ErrInvalidArgument)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("product price must be non-negative: %w", errs.ErrInvalidArgument)
	}
	if stock < 0 {
		return nil, fmt.Errorf("product stock must be non-negative: %w", errs.ErrInvalidArgument)
	}

	return &Product{
		ID:      uuid.NewString(),
		Name:    name,
		Price:   price,
		Stock:   stock,
		Expired: expired,
	}, nil
}

// NewShippable builds the shippable variant. Weight is in kilograms.
func NewShippable(name string, price decimal.Decimal, stock int64, expired bool, weight decimal.Decimal) (*Product, error) {
	p, err := New(name, price, stock, expired)
	if err != nil {
		return nil, err
	}
	if weight.IsNegative() {
		return nil, fmt.Errorf("product weight must be non-negative: %w", errs.ErrInvalidArgument)
	}

	p.shippable = true
	p.weight = weight
	return p, nil
}

func (p *Product) RequiresShipping() bool {
	return p.shippable
}

// Weight returns the unit weight in kilograms, zero for plain products.
func (p *Product) Weight() decimal.Decimal {
	return p.weight
}

// Reduce decrements stock in place. Reducing by more than the current stock
// is rejected and leaves stock unchanged.
func (p *Product) Reduce(qty int64) error {
	if qty > p.Stock {
		return fmt.Errorf("not enough stock for %s: %w", p.Name, errs.ErrInvalidArgument)
	}
	p.Stock -= qty
	return nil
}
