package application

import (
	"context"

	"github.com/selfservice/fastfood-api/internal/domains/orders/domain"
	"github.com/selfservice/fastfood-api/internal/domains/orders/ports"
	apierrors "github.com/selfservice/fastfood-api/internal/shared/errors"
	"github.com/selfservice/fastfood-api/internal/shared/idgen"
)

// Service orchestrates the order use cases.
type Service struct {
	repo ports.Repository
	ids  idgen.Generator
}

// NewService wires the order service. A nil generator defaults to random UUIDs.
func NewService(repo ports.Repository, ids idgen.Generator) *Service {
	if ids == nil {
		ids = idgen.NewUUID()
	}
	return &Service{repo: repo, ids: ids}
}

// CreateOrder places a new order with a generated id. Every call creates a new order.
func (s *Service) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.CreateOrderOutput, error) {
	if input.ClientID == "" || len(input.Products) == 0 {
		return nil, apierrors.NewBadRequest(msgInputNotProvided)
	}
	order := domain.NewOrder(domain.Props{
		ID:       s.ids.Generate(),
		ClientID: input.ClientID,
		Products: input.Products,
	})
	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, err
	}
	return &ports.CreateOrderOutput{Message: "Success!"}, nil
}

// UpdateOrder applies the status/payment changes to an existing order and persists it.
func (s *Service) UpdateOrder(ctx context.Context, input ports.UpdateOrderInput) (*domain.Order, error) {
	if input.ID == "" {
		return nil, apierrors.NewBadRequest(msgInputNotProvided)
	}
	if input.Status != nil && *input.Status != "" && !input.Status.Valid() {
		return nil, apierrors.NewBadRequest(msgInvalidStatus)
	}
	if input.PaymentStatus != nil && *input.PaymentStatus != "" && !input.PaymentStatus.Valid() {
		return nil, apierrors.NewBadRequest(msgInvalidPayment)
	}
	order, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	order.Update(domain.Patch{
		PaymentStatus: input.PaymentStatus,
		Status:        input.Status,
	})
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

// ListOrders returns the paid orders on the kitchen board, ready orders first and oldest first
// within a status.
func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	domain.SortForKitchen(orders)
	return orders, nil
}

// GetOrderPaymentStatus returns the whole order addressed by id.
func (s *Service) GetOrderPaymentStatus(ctx context.Context, input ports.OrderIdentifier) (*domain.Order, error) {
	if input.ID == "" {
		return nil, apierrors.NewBadRequest(msgOrderIDNotProvided)
	}
	order, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

// GetPaymentStatusSummary returns only the id and payment status of an order.
func (s *Service) GetPaymentStatusSummary(ctx context.Context, input ports.OrderIdentifier) (*ports.PaymentStatusView, error) {
	if input.ID == "" {
		return nil, apierrors.NewBadRequest(msgOrderIDNotProvided)
	}
	view, err := s.repo.GetPaymentStatus(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return view, nil
}

var _ ports.Service = (*Service)(nil)
