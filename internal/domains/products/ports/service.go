package ports

import (
	"context"

	"github.com/selfservice/fastfood-api/internal/domains/products/domain"
)

// CreateProductInput carries the raw attributes of a new product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
}

// ProductIdentifier addresses a single product.
type ProductIdentifier struct {
	ID string
}

// CategoryQuery filters products by category.
type CategoryQuery struct {
	CategoryID string
}

// DeleteProductOutput acknowledges a deletion.
type DeleteProductOutput struct {
	Message string
}

// Service exposes the product use cases to adapters.
type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, input ProductIdentifier) (*DeleteProductOutput, error)
	GetProductsByCategory(ctx context.Context, input CategoryQuery) ([]*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}

// PersistenceService is the narrow surface used by durable activities to store a product without
// replicating it.
type PersistenceService interface {
	PersistProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
}

// Registrar replicates an already stored product to the order service.
type Registrar interface {
	RegisterProduct(ctx context.Context, product *domain.Product) (RegistrationResult, error)
}
