package ports

import (
	"context"
	"errors"

	"github.com/selfservice/fastfood-api/internal/domains/orders/domain"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrAlreadyExists = errors.New("order already exists")
)

// PaymentStatusView is the narrow read of an order's payment state.
type PaymentStatusView struct {
	ID            string
	PaymentStatus domain.PaymentStatus
}

// Repository persists order aggregates. Lookups by id return ErrNotFound when absent.
type Repository interface {
	Insert(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
	GetPaymentStatus(ctx context.Context, id string) (*PaymentStatusView, error)
}
