package ports

import (
	"context"

	"github.com/selfservice/fastfood-api/internal/domains/orders/domain"
)

// CreateOrderInput carries an order request with products already resolved.
type CreateOrderInput struct {
	ClientID string
	Products []domain.ProductSnapshot
}

// CreateOrderOutput acknowledges an accepted order.
type CreateOrderOutput struct {
	Message string
}

// UpdateOrderInput changes the status fields of an existing order. Nil fields are left alone.
type UpdateOrderInput struct {
	ID            string
	PaymentStatus *domain.PaymentStatus
	Status        *domain.Status
}

// OrderIdentifier addresses a single order.
type OrderIdentifier struct {
	ID string
}

// Service exposes the order use cases to adapters.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error)
	UpdateOrder(ctx context.Context, input UpdateOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	GetOrderPaymentStatus(ctx context.Context, input OrderIdentifier) (*domain.Order, error)
	GetPaymentStatusSummary(ctx context.Context, input OrderIdentifier) (*PaymentStatusView, error)
}
