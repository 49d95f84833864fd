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

	productsdomain "github.com/selfservice/fastfood-api/internal/domains/products/domain"
	productsports "github.com/selfservice/fastfood-api/internal/domains/products/ports"
	apierrors "github.com/selfservice/fastfood-api/internal/shared/errors"
)

const tracerName = "github.com/selfservice/fastfood-api/internal/domains/products/adapters/observability/service"

// Service decorates the product service with tracing, logging, and metrics.
type Service struct {
	inner   productsports.Service
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

// New wraps the core product service.
func New(inner productsports.Service, opts ...Option) productsports.Service {
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

func (s *Service) CreateProduct(ctx context.Context, input productsports.CreateProductInput) (*productsdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.CreateProduct",
		trace.WithAttributes(attribute.String("product.category", input.Category)))
	defer span.End()

	s.logInfo(ctx, "creating product", slog.String("product.name", input.Name), slog.String("product.category", input.Category))
	result, err := s.inner.CreateProduct(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create product", slog.String("product.name", input.Name))
	}
	span.SetAttributes(attribute.String("product.id", result.ID))
	s.metrics.recordCreated(ctx, result.Category)
	s.logInfo(ctx, "product created", slog.String("product.id", result.ID))
	return result, nil
}

func (s *Service) DeleteProduct(ctx context.Context, input productsports.ProductIdentifier) (*productsports.DeleteProductOutput, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.DeleteProduct", trace.WithAttributes(attribute.String("product.id", input.ID)))
	defer span.End()

	s.logInfo(ctx, "deleting product", slog.String("product.id", input.ID))
	result, err := s.inner.DeleteProduct(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to delete product", slog.String("product.id", input.ID))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "product deleted", slog.String("product.id", input.ID))
	return result, nil
}

func (s *Service) GetProductsByCategory(ctx context.Context, input productsports.CategoryQuery) ([]*productsdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.GetProductsByCategory", trace.WithAttributes(attribute.String("product.category", input.CategoryID)))
	defer span.End()

	result, err := s.inner.GetProductsByCategory(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products by category", slog.String("product.category", input.CategoryID))
	}
	span.SetAttributes(attribute.Int("products.count", len(result)))
	return result, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]*productsdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.ListProducts")
	defer span.End()

	result, err := s.inner.ListProducts(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int("products.count", len(result)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		level := slog.LevelError
		if apierrors.IsBadRequest(err) {
			level = slog.LevelWarn
		}
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, level, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	productsCreated metric.Int64Counter
	productsDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	productsCreated, _ := m.Int64Counter("products.service.products_created", metric.WithDescription("Number of products created"))
	productsDeleted, _ := m.Int64Counter("products.service.products_deleted", metric.WithDescription("Number of products deleted"))
	return serviceMetrics{productsCreated: productsCreated, productsDeleted: productsDeleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context, category productsdomain.Category) {
	if m.productsCreated != nil {
		m.productsCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("product.category", string(category))))
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.productsDeleted != nil {
		m.productsDeleted.Add(ctx, 1)
	}
}

var _ productsports.Service = (*Service)(nil)
