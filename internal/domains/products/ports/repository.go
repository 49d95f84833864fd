package ports

import (
	"context"
	"errors"

	"github.com/selfservice/fastfood-api/internal/domains/products/domain"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrAlreadyExists = errors.New("product already exists")
)

// Repository persists products. Lookups by id return ErrNotFound when absent.
type Repository interface {
	Insert(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Product, error)
}
