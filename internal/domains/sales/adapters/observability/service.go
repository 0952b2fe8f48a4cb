package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	salesdomain "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
	salesports "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
)

const tracerName = "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/adapters/observability/service"

// Service decorates the sales service with tracing, logging, and metrics.
type Service struct {
	inner   salesports.Service
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

// New wraps the core sales service.
func New(inner salesports.Service, opts ...Option) salesports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
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

func (s *Service) Create(ctx context.Context, sale *salesdomain.Sale) (*salesdomain.Sale, error) {
	if sale == nil {
		// The core service rejects nil input with a validation error.
		return s.inner.Create(ctx, sale)
	}
	ctx, span := s.tracer.Start(ctx, "SalesService.Create",
		trace.WithAttributes(attribute.String("sale.number", sale.SaleNumber), attribute.Int("sale.detail_count", len(sale.Details))))
	defer span.End()

	s.logInfo(ctx, "recording sale", slog.String("sale.number", sale.SaleNumber), slog.Int("sale.detail_count", len(sale.Details)))
	result, err := s.inner.Create(ctx, sale)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to record sale", slog.String("sale.number", sale.SaleNumber))
	}
	s.metrics.recordSale(ctx, string(result.PaymentMethod))
	s.logInfo(ctx, "sale recorded", slog.Int64("sale.id", result.ID), slog.String("sale.number", result.SaleNumber))
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]*salesdomain.Sale, error) {
	ctx, span := s.tracer.Start(ctx, "SalesService.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list sales")
	}
	span.SetAttributes(attribute.Int("sale.count", len(result)))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*salesdomain.Sale, error) {
	ctx, span := s.tracer.Start(ctx, "SalesService.GetByID", trace.WithAttributes(attribute.Int64("sale.id", id)))
	defer span.End()

	s.logInfo(ctx, "loading sale", slog.Int64("sale.id", id))
	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load sale", slog.Int64("sale.id", id))
	}
	return result, nil
}

func (s *Service) GetWithDetails(ctx context.Context, id int64) (*salesports.SaleDetailsView, error) {
	ctx, span := s.tracer.Start(ctx, "SalesService.GetWithDetails", trace.WithAttributes(attribute.Int64("sale.id", id)))
	defer span.End()

	s.logInfo(ctx, "loading sale with resolved details", slog.Int64("sale.id", id))
	result, err := s.inner.GetWithDetails(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load sale details", slog.Int64("sale.id", id))
	}
	span.SetAttributes(attribute.Int("sale.motorcycle_count", len(result.Motorcycles)))
	return result, nil
}

func (s *Service) Update(ctx context.Context, id int64, incoming *salesdomain.Sale, details *[]salesdomain.DetailSale) (*salesdomain.Sale, error) {
	ctx, span := s.tracer.Start(ctx, "SalesService.Update",
		trace.WithAttributes(attribute.Int64("sale.id", id), attribute.Bool("sale.replace_details", details != nil)))
	defer span.End()

	s.logInfo(ctx, "updating sale", slog.Int64("sale.id", id), slog.Bool("replace_details", details != nil))
	result, err := s.inner.Update(ctx, id, incoming, details)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update sale", slog.Int64("sale.id", id))
	}
	s.logInfo(ctx, "sale updated", slog.Int64("sale.id", result.ID), slog.Int("sale.detail_count", len(result.Details)))
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "SalesService.Delete", trace.WithAttributes(attribute.Int64("sale.id", id)))
	defer span.End()

	s.logInfo(ctx, "deleting sale", slog.Int64("sale.id", id))
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete sale", slog.Int64("sale.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "sale deleted", slog.Int64("sale.id", id))
	return nil
}

func (s *Service) CreateDetail(ctx context.Context, detail *salesdomain.DetailSale) (*salesdomain.DetailSale, error) {
	if detail == nil {
		return s.inner.CreateDetail(ctx, detail)
	}
	ctx, span := s.tracer.Start(ctx, "SalesService.CreateDetail",
		trace.WithAttributes(attribute.Int64("sale.id", detail.SaleID), attribute.Int64("motorcycle.id", detail.MotorcycleID)))
	defer span.End()

	s.logInfo(ctx, "adding detail sale", slog.Int64("sale.id", detail.SaleID), slog.Int64("motorcycle.id", detail.MotorcycleID))
	result, err := s.inner.CreateDetail(ctx, detail)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add detail sale", slog.Int64("sale.id", detail.SaleID))
	}
	s.logInfo(ctx, "detail sale added", slog.Int64("detail.id", result.ID))
	return result, nil
}

func (s *Service) ListDetails(ctx context.Context) ([]*salesdomain.DetailSale, error) {
	ctx, span := s.tracer.Start(ctx, "SalesService.ListDetails")
	defer span.End()

	result, err := s.inner.ListDetails(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list detail sales")
	}
	span.SetAttributes(attribute.Int("detail.count", len(result)))
	return result, nil
}

func (s *Service) DetailByID(ctx context.Context, id int64) (*salesdomain.DetailSale, error) {
	ctx, span := s.tracer.Start(ctx, "SalesService.DetailByID", trace.WithAttributes(attribute.Int64("detail.id", id)))
	defer span.End()

	result, err := s.inner.DetailByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load detail sale", slog.Int64("detail.id", id))
	}
	return result, nil
}

func (s *Service) UpdateDetail(ctx context.Context, id int64, incoming *salesdomain.DetailSale) (*salesdomain.DetailSale, error) {
	ctx, span := s.tracer.Start(ctx, "SalesService.UpdateDetail", trace.WithAttributes(attribute.Int64("detail.id", id)))
	defer span.End()

	s.logInfo(ctx, "updating detail sale", slog.Int64("detail.id", id))
	result, err := s.inner.UpdateDetail(ctx, id, incoming)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update detail sale", slog.Int64("detail.id", id))
	}
	s.logInfo(ctx, "detail sale updated", slog.Int64("detail.id", result.ID))
	return result, nil
}

func (s *Service) DeleteDetail(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "SalesService.DeleteDetail", trace.WithAttributes(attribute.Int64("detail.id", id)))
	defer span.End()

	s.logInfo(ctx, "deleting detail sale", slog.Int64("detail.id", id))
	if err := s.inner.DeleteDetail(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete detail sale", slog.Int64("detail.id", id))
	}
	s.logInfo(ctx, "detail sale deleted", slog.Int64("detail.id", id))
	return nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	salesRecorded metric.Int64Counter
	salesDeleted  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	salesRecorded, _ := m.Int64Counter("sales.service.sales_recorded", metric.WithDescription("Number of sales recorded"))
	salesDeleted, _ := m.Int64Counter("sales.service.sales_deleted", metric.WithDescription("Number of sales deleted"))
	return serviceMetrics{salesRecorded: salesRecorded, salesDeleted: salesDeleted}
}

func (m serviceMetrics) recordSale(ctx context.Context, paymentMethod string) {
	if m.salesRecorded != nil {
		m.salesRecorded.Add(ctx, 1, metric.WithAttributes(attribute.String("sale.payment_method", paymentMethod)))
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.salesDeleted != nil {
		m.salesDeleted.Add(ctx, 1)
	}
}

var _ salesports.Service = (*Service)(nil)
