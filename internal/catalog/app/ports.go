package app

import (
	"context"

	"github.com/microshop/checkout/internal/catalog/domain"
)

// ProductRepo stores products by pointer: checkout mutates stock in place
// and lookups observe the change.
type ProductRepo interface {
	Create(ctx context.Context, p *domain.Product) error
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}
