package products

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	productsdomain "github.com/selfservice/fastfood-api/internal/domains/products/domain"
	productsports "github.com/selfservice/fastfood-api/internal/domains/products/ports"
)

const (
	// PersistProductActivityName stores a product without replicating it.
	PersistProductActivityName = "products.activities.PersistProduct"
	// RegisterProductActivityName replicates a stored product to the order service.
	RegisterProductActivityName = "products.activities.RegisterProductWithOrderService"
)

// Activities groups activities that operate on the products bounded context.
type Activities struct {
	persistence productsports.PersistenceService
	registrar   productsports.Registrar
}

// NewActivities wires the products collaborators into the Temporal activities bundle.
func NewActivities(persistence productsports.PersistenceService, registrar productsports.Registrar) *Activities {
	return &Activities{persistence: persistence, registrar: registrar}
}

// PersistProduct validates and stores a new product.
func (a *Activities) PersistProduct(ctx context.Context, input productsports.CreateProductInput) (*productsdomain.Product, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.persistence == nil {
		logger.Error("product persist activity not initialized")
		return nil, errors.New("product persist activity not initialized")
	}
	logger.Info("PersistProduct activity started", "productName", input.Name)
	product, err := a.persistence.PersistProduct(ctx, input)
	if err != nil {
		logger.Error("PersistProduct activity failed", "productName", input.Name, "error", err)
		return nil, err
	}
	logger.Info("PersistProduct activity completed", "productId", product.ID)
	return product, nil
}

// RegisterProductWithOrderService replicates the product. Only a transport failure fails the activity.
func (a *Activities) RegisterProductWithOrderService(ctx context.Context, product productsdomain.Product) (productsports.RegistrationResult, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.registrar == nil {
		logger.Error("product register activity not initialized", "productId", product.ID)
		return productsports.RegistrationResult{}, errors.New("product register activity not initialized")
	}
	logger.Info("RegisterProductWithOrderService activity started", "productId", product.ID)
	result, err := a.registrar.RegisterProduct(ctx, &product)
	if err != nil {
		logger.Error("RegisterProductWithOrderService activity failed", "productId", product.ID, "error", err)
		return productsports.RegistrationResult{}, err
	}
	logger.Info("RegisterProductWithOrderService activity completed",
		"productId", product.ID, "accepted", result.Accepted, "status", result.StatusCode)
	return result, nil
}
