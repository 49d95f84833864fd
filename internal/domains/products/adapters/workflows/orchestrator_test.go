package workflows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"

	"github.com/selfservice/fastfood-api/internal/domains/products/adapters/memory"
	"github.com/selfservice/fastfood-api/internal/domains/products/application"
	"github.com/selfservice/fastfood-api/internal/domains/products/domain"
	"github.com/selfservice/fastfood-api/internal/domains/products/ports"
	productworkflows "github.com/selfservice/fastfood-api/internal/platform/temporal/workflows/products"
	"github.com/selfservice/fastfood-api/internal/shared/idgen"
)

func TestInlineProductWorkflows_DelegatesToService(t *testing.T) {
	svc := application.NewService(memory.NewRepository(), nil, application.WithIDGenerator(idgen.Fixed("product-1")))
	orchestrator := NewInlineProductWorkflows(svc)

	product, err := orchestrator.CreateProduct(context.Background(), ports.CreateProductInput{
		Name: "Sundae", Description: "Vanilla", Price: 8, Category: "DESSERT",
	})
	require.NoError(t, err)
	assert.Equal(t, "product-1", product.ID)
}

func TestNilOrchestratorsFail(t *testing.T) {
	var inline *InlineProductWorkflows
	_, err := inline.CreateProduct(context.Background(), ports.CreateProductInput{})
	assert.EqualError(t, err, "inline product workflows not configured")

	_, err = NewTemporalProductWorkflows(nil).CreateProduct(context.Background(), ports.CreateProductInput{})
	assert.EqualError(t, err, "temporal product workflows not configured")
}

func TestWorkflowTraceComponent(t *testing.T) {
	assert.Contains(t, workflowTraceComponent(context.Background()), "fallback-")

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	assert.Equal(t, span.SpanContext().TraceID().String(), workflowTraceComponent(ctx))
}

func completedRun(product domain.Product) *mocks.WorkflowRun {
	run := &mocks.WorkflowRun{}
	run.On("Get", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(1).(*domain.Product) = product
	}).Return(nil)
	return run
}

func TestTemporalProductWorkflows_ExecutesCreationWorkflow(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	traceID := span.SpanContext().TraceID().String()
	input := ports.CreateProductInput{Name: "Fries", Price: 9, Category: "SIDE"}

	c := &mocks.Client{}
	c.On("ExecuteWorkflow", mock.Anything,
		mock.MatchedBy(func(o client.StartWorkflowOptions) bool {
			return o.ID == "product-creation-"+traceID && o.TaskQueue == productworkflows.ProductCreationTaskQueue
		}),
		productworkflows.ProductCreationWorkflowName,
		productworkflows.ProductCreationWorkflowInput{Command: input, TraceID: traceID},
	).Return(completedRun(domain.Product{ID: "product-9", Name: "Fries"}), nil)

	product, err := NewTemporalProductWorkflows(c).CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "product-9", product.ID)
	c.AssertExpectations(t)
}

func TestTemporalProductWorkflows_AttachesToStartedRun(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	workflowID := "product-creation-" + span.SpanContext().TraceID().String()

	c := &mocks.Client{}
	c.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &serviceerror.WorkflowExecutionAlreadyStarted{Message: "started", RunId: "run-1"})
	c.On("GetWorkflow", mock.Anything, workflowID, "run-1").
		Return(completedRun(domain.Product{ID: "product-1"}))

	product, err := NewTemporalProductWorkflows(c).CreateProduct(ctx, ports.CreateProductInput{Name: "Soda"})

	require.NoError(t, err)
	assert.Equal(t, "product-1", product.ID)
	c.AssertExpectations(t)
}
