package products

import (
	"go.temporal.io/sdk/workflow"

	productsdomain "github.com/selfservice/fastfood-api/internal/domains/products/domain"
	productsports "github.com/selfservice/fastfood-api/internal/domains/products/ports"
	"github.com/selfservice/fastfood-api/internal/platform/temporal/sequences"
)

const (
	// ProductCreationWorkflowName is the public identifier for registering the workflow.
	ProductCreationWorkflowName = "products.workflows.Creation"
	// ProductCreationTaskQueue is the queue consumed by the worker processing product workflows.
	ProductCreationTaskQueue = "PRODUCT_CREATION"
)

// ProductCreationWorkflowInput captures the payload required to create a product.
type ProductCreationWorkflowInput struct {
	Command productsports.CreateProductInput
	TraceID string
}

// ProductCreationWorkflow orchestrates the activities needed to create and replicate a product.
func ProductCreationWorkflow(ctx workflow.Context, input ProductCreationWorkflowInput) (*productsdomain.Product, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("ProductCreationWorkflow started", withTraceID(input.TraceID, "productName", input.Command.Name)...)
	product, err := sequences.RunProductCreationSequence(ctx, input.Command)
	if err != nil {
		logger.Error("ProductCreationWorkflow failed", withTraceID(input.TraceID, "productName", input.Command.Name, "error", err)...)
		return nil, err
	}
	logger.Info("ProductCreationWorkflow completed", withTraceID(input.TraceID, "productId", product.ID)...)
	return product, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
