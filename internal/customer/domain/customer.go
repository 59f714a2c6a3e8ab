package domain

import (
	"fmt"
	"strings"

	"github.com/microshop/checkout/internal/errs"
	"github.com/shopspring/decimal"
)

// Customer holds a spendable balance that checkout charges in place.
type Customer struct {
	ID      string
	Name    string
	Balance decimal.Decimal
}

func New(name string, balance decimal.Decimal) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("customer name must not be empty: %w", errs.ErrInvalidArgument)
	}
	if balance.IsNegative() {
		return nil, fmt.Errorf("customer balance must be non-negative: %w", errs.ErrInvalidArgument)
	}

	return &Customer{Name: name, Balance: balance}, nil
}

// Deduct charges the balance in place. Charging more than the current
// balance is rejected and leaves the balance unchanged.
func (c *Customer) Deduct(amount decimal.Decimal) error {
	if amount.GreaterThan(c.Balance) {
		return fmt.Errorf("insufficient balance for customer %s: %w", c.Name, errs.ErrInsufficientBalance)
	}
	c.Balance = c.Balance.Sub(amount)
	return nil
}
