package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/microshop/checkout/internal/catalog/domain"
	"github.com/microshop/checkout/internal/errs"
	"github.com/shopspring/decimal"
)

// Service is the product registry: it validates through the domain
// constructors and stores through the repo port.
type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateProduct(ctx context.Context, name string, price decimal.Decimal, stock int64, expired bool) (*domain.Product, error) {
	p, err := domain.New(name, price, stock, expired)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, p)
}

func (s *Service) CreateShippable(ctx context.Context, name string, price decimal.Decimal, stock int64, expired bool, weight decimal.Decimal) (*domain.Product, error) {
	p, err := domain.NewShippable(name, price, stock, expired, weight)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, p)
}

func (s *Service) store(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to store product %s: %w", p.Name, err)
	}
	return p, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("product id must not be empty: %w", errs.ErrInvalidArgument)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}
