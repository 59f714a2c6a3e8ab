package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/microshop/checkout/internal/catalog/domain"
	"github.com/microshop/checkout/internal/errs"
)

// ProductRepo is the in-memory ProductRepo implementation. Products are held
// by pointer so stock reductions made elsewhere stay visible through Get.
type ProductRepo struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Product
	order []string
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{
		byID: make(map[string]*domain.Product),
	}
}

func (r *ProductRepo) Create(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID]; ok {
		return fmt.Errorf("product %s already exists: %w", p.ID, errs.ErrInvalidArgument)
	}
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *ProductRepo) Get(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, errs.ErrNotFound)
	}
	return p, nil
}

func (r *ProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
