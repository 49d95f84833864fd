package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	productsdomain "github.com/selfservice/fastfood-api/internal/domains/products/domain"
	productsports "github.com/selfservice/fastfood-api/internal/domains/products/ports"
)

// RejectionRecorder logs, traces and counts order service rejections.
type RejectionRecorder struct {
	logger   *slog.Logger
	rejected metric.Int64Counter
}

// NewRejectionRecorder builds a recorder. Nil logger or meter disable that signal.
func NewRejectionRecorder(logger *slog.Logger, m metric.Meter) *RejectionRecorder {
	r := &RejectionRecorder{logger: logger}
	if m != nil {
		r.rejected, _ = m.Int64Counter("products.service.replication_rejected",
			metric.WithDescription("Number of products the order service answered with an error"))
	}
	return r
}

// ProductRejected records the rejection on the active span, the log and the counter.
func (r *RejectionRecorder) ProductRejected(ctx context.Context, product *productsdomain.Product, result productsports.RegistrationResult) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent("order_service.rejected", trace.WithAttributes(
		attribute.String("product.id", product.ID),
		attribute.Int("http.status_code", result.StatusCode),
	))
	if r.logger != nil {
		r.logger.LogAttrs(ctx, slog.LevelWarn, "order service rejected product",
			slog.String("product.id", product.ID),
			slog.Int("status", result.StatusCode),
			slog.String("body", result.ErrorBody))
	}
	if r.rejected != nil {
		r.rejected.Add(ctx, 1, metric.WithAttributes(attribute.Int("http.status_code", result.StatusCode)))
	}
}

var _ productsports.RejectionObserver = (*RejectionRecorder)(nil)
