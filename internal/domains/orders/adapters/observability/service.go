package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordersdomain "github.com/selfservice/fastfood-api/internal/domains/orders/domain"
	ordersports "github.com/selfservice/fastfood-api/internal/domains/orders/ports"
	apierrors "github.com/selfservice/fastfood-api/internal/shared/errors"
)

const tracerName = "github.com/selfservice/fastfood-api/internal/domains/orders/adapters/observability/service"

// Service decorates the order service with tracing, logging, and metrics.
type Service struct {
	inner   ordersports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) CreateOrder(ctx context.Context, input ordersports.CreateOrderInput) (*ordersports.CreateOrderOutput, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.CreateOrder",
		trace.WithAttributes(attribute.String("order.client_id", input.ClientID), attribute.Int("order.products", len(input.Products))))
	defer span.End()

	s.logInfo(ctx, "creating order", slog.String("order.client_id", input.ClientID), slog.Int("order.products", len(input.Products)))
	result, err := s.inner.CreateOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create order", slog.String("order.client_id", input.ClientID))
	}
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "order created", slog.String("order.client_id", input.ClientID))
	return result, nil
}

func (s *Service) UpdateOrder(ctx context.Context, input ordersports.UpdateOrderInput) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.UpdateOrder", trace.WithAttributes(attribute.String("order.id", input.ID)))
	defer span.End()

	s.logInfo(ctx, "updating order", slog.String("order.id", input.ID))
	result, err := s.inner.UpdateOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order", slog.String("order.id", input.ID))
	}
	s.metrics.recordUpdated(ctx, result.Status)
	s.logInfo(ctx, "order updated",
		slog.String("order.id", result.ID),
		slog.String("status", string(result.Status)),
		slog.String("payment_status", string(result.PaymentStatus)))
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders")
	defer span.End()

	result, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) GetOrderPaymentStatus(ctx context.Context, input ordersports.OrderIdentifier) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrderPaymentStatus", trace.WithAttributes(attribute.String("order.id", input.ID)))
	defer span.End()

	result, err := s.inner.GetOrderPaymentStatus(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", input.ID))
	}
	span.SetAttributes(attribute.String("order.payment_status", string(result.PaymentStatus)))
	return result, nil
}

func (s *Service) GetPaymentStatusSummary(ctx context.Context, input ordersports.OrderIdentifier) (*ordersports.PaymentStatusView, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetPaymentStatusSummary", trace.WithAttributes(attribute.String("order.id", input.ID)))
	defer span.End()

	result, err := s.inner.GetPaymentStatusSummary(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load payment status", slog.String("order.id", input.ID))
	}
	span.SetAttributes(attribute.String("order.payment_status", string(result.PaymentStatus)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, level slog.Level, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, level, msg, attrs...)
}

// handleError records err on the span. Validation failures are logged as warnings.
func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	level := slog.LevelError
	if apierrors.IsBadRequest(err) {
		level = slog.LevelWarn
	}
	s.logError(ctx, level, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersCreated metric.Int64Counter
	ordersUpdated metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersCreated, _ := m.Int64Counter("orders.service.orders_created", metric.WithDescription("Number of orders created"))
	ordersUpdated, _ := m.Int64Counter("orders.service.orders_updated", metric.WithDescription("Number of order updates"))
	return serviceMetrics{ordersCreated: ordersCreated, ordersUpdated: ordersUpdated}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.ordersCreated != nil {
		m.ordersCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordUpdated(ctx context.Context, status ordersdomain.Status) {
	if m.ordersUpdated != nil {
		m.ordersUpdated.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(status))))
	}
}

var _ ordersports.Service = (*Service)(nil)
