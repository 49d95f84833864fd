package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/selfservice/fastfood-api/internal/domains/products/domain"
	"github.com/selfservice/fastfood-api/internal/domains/products/ports"
	productworkflows "github.com/selfservice/fastfood-api/internal/platform/temporal/workflows/products"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalProductWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineProductWorkflows)(nil)
)

// TemporalProductWorkflows starts product workflows on a Temporal cluster.
type TemporalProductWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalProductWorkflows wires a Temporal client into the orchestrator.
func NewTemporalProductWorkflows(c client.Client) *TemporalProductWorkflows {
	return &TemporalProductWorkflows{client: c, taskQueue: productworkflows.ProductCreationTaskQueue}
}

// CreateProduct runs the product creation workflow and waits for its result. A request replayed
// within the same trace attaches to the run already started for it.
func (o *TemporalProductWorkflows) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal product workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	workflowID := fmt.Sprintf("product-creation-%s", traceComponent)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		productworkflows.ProductCreationWorkflowName,
		productworkflows.ProductCreationWorkflowInput{Command: input, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if !errors.As(err, &alreadyStarted) {
			return nil, err
		}
		run = o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
	}
	var product domain.Product
	if err := run.Get(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// InlineProductWorkflows executes the service directly without Temporal, useful for tests or dev fallbacks.
type InlineProductWorkflows struct {
	service ports.Service
}

// NewInlineProductWorkflows wraps the products service for synchronous execution.
func NewInlineProductWorkflows(service ports.Service) *InlineProductWorkflows {
	return &InlineProductWorkflows{service: service}
}

// CreateProduct delegates to the application service without durable orchestration.
func (o *InlineProductWorkflows) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline product workflows not configured")
	}
	return o.service.CreateProduct(ctx, input)
}

func workflowTraceComponent(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if spanCtx := span.SpanContext(); spanCtx.IsValid() && spanCtx.TraceID().IsValid() {
		return spanCtx.TraceID().String()
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}
