package app

import (
	"fmt"
	"io"
	"os"

	cart "github.com/microshop/checkout/internal/cart/domain"
	"github.com/microshop/checkout/internal/checkout/domain"
	customer "github.com/microshop/checkout/internal/customer/domain"
	"github.com/microshop/checkout/internal/errs"
	"github.com/shopspring/decimal"
)

// shippingFee is the flat surcharge applied once when anything in the cart
// requires shipping.
var shippingFee = decimal.NewFromInt(30)

var gramsPerKilogram = decimal.NewFromInt(1000)

// Service runs the checkout sequence: validate every line item, price the
// cart, charge the customer, write the shipment notice and receipt, then
// commit the stock reduction. A failure anywhere before the charge leaves
// customer and stock untouched; the charge strictly precedes the stock
// reduction.
type Service struct {
	out io.Writer
}

func NewService(out io.Writer) *Service {
	if out == nil {
		out = os.Stdout
	}
	return &Service{
		out: out,
	}
}

func (s *Service) Checkout(cust *customer.Customer, crt *cart.Cart) (domain.Summary, error) {
	if cust == nil {
		return domain.Summary{}, fmt.Errorf("customer must not be nil: %w", errs.ErrInvalidArgument)
	}
	if crt == nil {
		return domain.Summary{}, fmt.Errorf("cart must not be nil: %w", errs.ErrInvalidArgument)
	}

	items := crt.Items()

	for _, item := range items {
		if item.Product.Expired {
			return domain.Summary{}, fmt.Errorf("%s is expired: %w", item.Product.Name, errs.ErrInvalidState)
		}
		if item.Quantity > item.Product.Stock {
			return domain.Summary{}, fmt.Errorf("%s out of stock: %w", item.Product.Name, errs.ErrInvalidState)
		}
	}

	subtotal := crt.Subtotal()
	weight := crt.TotalWeight()
	shipping := decimal.Zero
	if weight.IsPositive() {
		shipping = shippingFee
	}
	total := subtotal.Add(shipping)

	if err := cust.Deduct(total); err != nil {
		return domain.Summary{}, err
	}

	s.writeShipmentNotice(items, weight)
	s.writeReceipt(items, subtotal, shipping, total)

	// Stock is committed last; item validation above guarantees this
	// cannot come up short.
	for _, item := range items {
		if err := item.Product.Reduce(item.Quantity); err != nil {
			return domain.Summary{}, err
		}
	}

	return domain.Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    total,
		Weight:   weight,
	}, nil
}

func (s *Service) writeShipmentNotice(items []cart.LineItem, weight decimal.Decimal) {
	fmt.Fprintln(s.out, "** Shipment notice **")

	hasShippable := false
	for _, item := range items {
		if !item.Product.RequiresShipping() {
			continue
		}
		hasShippable = true
		grams := item.Product.Weight().Mul(decimal.NewFromInt(item.Quantity)).Mul(gramsPerKilogram)
		fmt.Fprintf(s.out, "%dx %-12s %sg\n", item.Quantity, item.Product.Name, grams.StringFixed(0))
	}

	if !hasShippable {
		fmt.Fprintln(s.out, "No items in cart")
		return
	}
	fmt.Fprintf(s.out, "Total package weight %s kg\n", weight.StringFixed(1))
}

func (s *Service) writeReceipt(items []cart.LineItem, subtotal, shipping, total decimal.Decimal) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "** Checkout receipt **")

	if len(items) == 0 {
		fmt.Fprintln(s.out, "No items to checkout")
	}
	for _, item := range items {
		lineTotal := item.Product.Price.Mul(decimal.NewFromInt(item.Quantity))
		fmt.Fprintf(s.out, "%dx %-12s %s\n", item.Quantity, item.Product.Name, lineTotal.StringFixed(0))
	}

	fmt.Fprintf(s.out, "Subtotal %s\n", subtotal.StringFixed(0))
	fmt.Fprintf(s.out, "Shipping %s\n", shipping.StringFixed(0))
	fmt.Fprintf(s.out, "Amount %s\n", total.StringFixed(0))
}
