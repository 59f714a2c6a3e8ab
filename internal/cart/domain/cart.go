package domain

import (
	"fmt"

	"github.com/google/uuid"
	catalog "github.com/microshop/checkout/internal/catalog/domain"
	"github.com/microshop/checkout/internal/errs"
	"github.com/shopspring/decimal"
)

// LineItem pairs a product with the quantity requested so far.
type LineItem struct {
	Product  *catalog.Product
	Quantity int64
}

// Cart accumulates line items keyed by product ID. Insertion order is kept
// so reports come out in the order items were added.
type Cart struct {
	ID    string
	items map[string]*LineItem
	order []string
}

func NewCart() *Cart {
	return &Cart{
		ID:    uuid.NewString(),
		items: make(map[string]*LineItem),
	}
}

// Add merges qty into the requested quantity for the product. The quantity
// being added is checked against the product's current stock; the merged
// total is not re-validated here — checkout re-checks it against stock at
// checkout time.
func (c *Cart) Add(p *catalog.Product, qty int64) error {
	if p == nil {
		return fmt.Errorf("product must not be nil: %w", errs.ErrInvalidArgument)
	}
	if qty <= 0 {
		return fmt.Errorf("quantity must be positive: %w", errs.ErrInvalidArgument)
	}
	if qty > p.Stock {
		return fmt.Errorf("quantity exceeds stock for %s: %w", p.Name, errs.ErrInvalidArgument)
	}

	if item, ok := c.items[p.ID]; ok {
		item.Quantity += qty
		return nil
	}
	c.items[p.ID] = &LineItem{Product: p, Quantity: qty}
	c.order = append(c.order, p.ID)
	return nil
}

// Items returns the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.items[id])
	}
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal is the sum of price times requested quantity over all items.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, id := range c.order {
		item := c.items[id]
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total
}

// TotalWeight is the shippable weight of the cart in kilograms. Plain
// products contribute nothing.
func (c *Cart) TotalWeight() decimal.Decimal {
	total := decimal.Zero
	for _, id := range c.order {
		item := c.items[id]
		if !item.Product.RequiresShipping() {
			continue
		}
		total = total.Add(item.Product.Weight().Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total
}
