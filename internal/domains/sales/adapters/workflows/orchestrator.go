package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/sdk/client"

	salesdomain "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
	saleworkflows "github.com/edwingd18/Prueba-motorcycles/internal/durable/temporal/workflows/sales"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalSaleWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineSaleWorkflows)(nil)
)

// TemporalSaleWorkflows starts sale workflows on a Temporal cluster.
type TemporalSaleWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalSaleWorkflows wires a Temporal client into the orchestrator.
func NewTemporalSaleWorkflows(c client.Client) *TemporalSaleWorkflows {
	return &TemporalSaleWorkflows{client: c, taskQueue: saleworkflows.SaleRecordingTaskQueue}
}

// RecordSale starts the Temporal workflow that persists a sale aggregate.
func (o *TemporalSaleWorkflows) RecordSale(ctx context.Context, sale *salesdomain.Sale) (*salesdomain.Sale, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal sale workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	options := client.StartWorkflowOptions{
		ID:        buildSaleRecordingWorkflowID(sale, traceComponent),
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		saleworkflows.SaleRecordingWorkflow,
		saleworkflows.SaleRecordingWorkflowInput{Sale: sale, TraceID: traceComponent},
	)
	if err != nil {
		return nil, err
	}
	var recorded salesdomain.Sale
	if err := run.Get(ctx, &recorded); err != nil {
		return nil, err
	}
	return &recorded, nil
}

// InlineSaleWorkflows executes the service directly without Temporal, useful for tests or dev fallbacks.
type InlineSaleWorkflows struct {
	service ports.Service
}

// NewInlineSaleWorkflows wraps the sales service for synchronous execution.
func NewInlineSaleWorkflows(service ports.Service) *InlineSaleWorkflows {
	return &InlineSaleWorkflows{service: service}
}

// RecordSale delegates to the application service without durable orchestration.
func (o *InlineSaleWorkflows) RecordSale(ctx context.Context, sale *salesdomain.Sale) (*salesdomain.Sale, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline sale workflows not configured")
	}
	return o.service.Create(ctx, sale)
}

func buildSaleRecordingWorkflowID(sale *salesdomain.Sale, traceComponent string) string {
	saleNumber := ""
	if sale != nil {
		saleNumber = sale.SaleNumber
	}
	if saleNumber == "" {
		return fmt.Sprintf("sale-recording-%d-%s", time.Now().UnixNano(), traceComponent)
	}
	return fmt.Sprintf("sale-recording-%s-%s", saleNumber, traceComponent)
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
