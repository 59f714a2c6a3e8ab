package domain

import "github.com/shopspring/decimal"

// Summary is what a checkout charged and why: the receipt totals plus the
// shippable weight the shipping fee was derived from.
type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
	Weight   decimal.Decimal // kilograms
}
