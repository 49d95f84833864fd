package ports

import (
	"context"

	"github.com/selfservice/fastfood-api/internal/domains/products/domain"
)

// WorkflowOrchestrator exposes the durable product creation flow.
type WorkflowOrchestrator interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
}
