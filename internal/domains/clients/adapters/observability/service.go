package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	clientsdomain "github.com/selfservice/fastfood-api/internal/domains/clients/domain"
	clientsports "github.com/selfservice/fastfood-api/internal/domains/clients/ports"
	apierrors "github.com/selfservice/fastfood-api/internal/shared/errors"
)

const tracerName = "github.com/selfservice/fastfood-api/internal/domains/clients/adapters/observability/service"

// Service decorates the client service with tracing, logging, and metrics.
// CPFs are personal data and never leave the process as span attributes or log fields.
type Service struct {
	inner   clientsports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	created metric.Int64Counter
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
		if m != nil {
			s.created, _ = m.Int64Counter("clients.service.clients_created", metric.WithDescription("Number of clients created"))
		}
	}
}

// New wraps the core client service.
func New(inner clientsports.Service, opts ...Option) clientsports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
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

func (s *Service) CreateClient(ctx context.Context, input clientsports.CreateClientInput) (*clientsdomain.Client, error) {
	ctx, span := s.tracer.Start(ctx, "ClientService.CreateClient")
	defer span.End()

	s.logInfo(ctx, "creating client")
	result, err := s.inner.CreateClient(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create client")
	}
	if s.created != nil {
		s.created.Add(ctx, 1)
	}
	s.logInfo(ctx, "client created", slog.String("client.id", result.ID))
	return result, nil
}

func (s *Service) GetClient(ctx context.Context, input clientsports.ClientIdentifier) (*clientsdomain.Client, error) {
	ctx, span := s.tracer.Start(ctx, "ClientService.GetClient")
	defer span.End()

	result, err := s.inner.GetClient(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load client")
	}
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if s.logger != nil {
		level := slog.LevelError
		if apierrors.IsBadRequest(err) {
			level = slog.LevelWarn
		}
		s.logger.LogAttrs(ctx, level, msg, slog.String("error", err.Error()))
	}
	return err
}

var _ clientsports.Service = (*Service)(nil)
