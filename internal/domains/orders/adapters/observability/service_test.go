package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/selfservice/fastfood-api/internal/domains/orders/adapters/memory"
	"github.com/selfservice/fastfood-api/internal/domains/orders/application"
	"github.com/selfservice/fastfood-api/internal/domains/orders/domain"
	"github.com/selfservice/fastfood-api/internal/domains/orders/ports"
	"github.com/selfservice/fastfood-api/internal/shared/idgen"
)

func TestService_TracesAndLogsUseCases(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	inner := application.NewService(memory.NewRepository(), idgen.Fixed("order-1"))
	svc := New(inner, WithLogger(logger), WithTracer(provider.Tracer("test")))
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, ports.CreateOrderInput{
		ClientID: "client-1",
		Products: []domain.ProductSnapshot{{ID: "p1", Price: 10}},
	})
	require.NoError(t, err)

	_, err = svc.GetOrderPaymentStatus(ctx, ports.OrderIdentifier{ID: "missing"})
	require.EqualError(t, err, "Order not found")

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "OrderService.CreateOrder", spans[0].Name())
	assert.Equal(t, "OrderService.GetOrderPaymentStatus", spans[1].Name())
	assert.Len(t, spans[1].Events(), 1)

	assert.Contains(t, logs.String(), `"msg":"order created"`)
	assert.Contains(t, logs.String(), `"level":"WARN","msg":"failed to load order"`)
}
