package ports

import (
	"context"

	"github.com/selfservice/fastfood-api/internal/domains/products/domain"
)

// RegistrationResult describes how the order service answered a product registration.
// Accepted is false when the remote answered with an error status; ErrorBody holds its raw body.
type RegistrationResult struct {
	Accepted   bool
	StatusCode int
	ErrorBody  string
}

// OrderServiceGateway replicates products to the sibling order service. It returns an error only
// when no answer was received.
type OrderServiceGateway interface {
	AddNewProduct(ctx context.Context, product *domain.Product) (RegistrationResult, error)
}

// RejectionObserver is notified when the order service answers a registration with an error.
type RejectionObserver interface {
	ProductRejected(ctx context.Context, product *domain.Product, result RegistrationResult)
}
