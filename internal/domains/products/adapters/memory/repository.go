package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/selfservice/fastfood-api/internal/domains/products/domain"
	"github.com/selfservice/fastfood-api/internal/domains/products/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory product persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

func NewRepository() *Repository {
	return &Repository{products: map[string]*domain.Product{}}
}

func (r *Repository) Insert(_ context.Context, product *domain.Product) error {
	if product == nil {
		return errors.New("product is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; ok {
		return ports.ErrAlreadyExists
	}
	r.products[product.ID] = product.Clone()
	return nil
}

func (r *Repository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return product.Clone(), nil
}

func (r *Repository) FindAll(_ context.Context) ([]*domain.Product, error) {
	return r.filter(func(*domain.Product) bool { return true }), nil
}

func (r *Repository) Update(_ context.Context, product *domain.Product) error {
	if product == nil {
		return errors.New("product is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return ports.ErrNotFound
	}
	r.products[product.ID] = product.Clone()
	return nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *Repository) ListByCategory(_ context.Context, category domain.Category) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return p.Category == category }), nil
}

// filter returns matching products sorted by name for stable listings.
func (r *Repository) filter(match func(*domain.Product) bool) []*domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		if match(product) {
			list = append(list, product.Clone())
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
