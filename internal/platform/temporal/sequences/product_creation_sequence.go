package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	productsdomain "github.com/selfservice/fastfood-api/internal/domains/products/domain"
	productsports "github.com/selfservice/fastfood-api/internal/domains/products/ports"
	productactivities "github.com/selfservice/fastfood-api/internal/platform/temporal/activities/products"
)

// RunProductCreationSequence persists a product and then replicates it to the order service.
// Each activity runs exactly once.
func RunProductCreationSequence(ctx workflow.Context, input productsports.CreateProductInput) (*productsdomain.Product, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("product creation sequence started", "productName", input.Name)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var product productsdomain.Product
	if err := workflow.ExecuteActivity(ctx, productactivities.PersistProductActivityName, input).Get(ctx, &product); err != nil {
		logger.Error("product creation sequence failed to persist", "productName", input.Name, "error", err)
		return nil, err
	}
	logger.Info("product creation sequence persisted", "productId", product.ID)

	var result productsports.RegistrationResult
	if err := workflow.ExecuteActivity(ctx, productactivities.RegisterProductActivityName, product).Get(ctx, &result); err != nil {
		logger.Error("product creation sequence failed to register", "productId", product.ID, "error", err)
		return nil, err
	}
	logger.Info("product creation sequence registered", "productId", product.ID, "accepted", result.Accepted)
	return &product, nil
}
