package orderservice

import (
	"context"
	"errors"

	orderserviceclient "github.com/selfservice/fastfood-api/internal/clients/http/orderservice"
	"github.com/selfservice/fastfood-api/internal/domains/products/domain"
	"github.com/selfservice/fastfood-api/internal/domains/products/ports"
)

// Registrar implements the order service gateway port over HTTP.
type Registrar struct {
	client *orderserviceclient.Client
}

// NewRegistrar wires an order service HTTP client into a gateway adapter.
func NewRegistrar(client *orderserviceclient.Client) *Registrar {
	return &Registrar{client: client}
}

// AddNewProduct pushes the product to the order service and reports how it answered.
func (r *Registrar) AddNewProduct(ctx context.Context, product *domain.Product) (ports.RegistrationResult, error) {
	if r == nil || r.client == nil {
		return ports.RegistrationResult{}, errors.New("order service registrar not configured")
	}
	if product == nil {
		return ports.RegistrationResult{}, errors.New("product is nil")
	}
	resp, err := r.client.AddNewProduct(ctx, ToPayload(product))
	if err != nil {
		return ports.RegistrationResult{}, err
	}
	result := ports.RegistrationResult{Accepted: resp.Success(), StatusCode: resp.StatusCode}
	if !result.Accepted {
		result.ErrorBody = resp.Body
	}
	return result, nil
}

// ToPayload converts a product into the order service payload shape.
func ToPayload(p *domain.Product) orderserviceclient.ProductPayload {
	return orderserviceclient.ProductPayload{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    string(p.Category),
	}
}

// Noop accepts every product without contacting anything. Used when no order service is configured.
type Noop struct{}

func (Noop) AddNewProduct(context.Context, *domain.Product) (ports.RegistrationResult, error) {
	return ports.RegistrationResult{Accepted: true}, nil
}

var (
	_ ports.OrderServiceGateway = (*Registrar)(nil)
	_ ports.OrderServiceGateway = Noop{}
)
