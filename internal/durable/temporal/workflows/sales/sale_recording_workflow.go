package sales

import (
	"go.temporal.io/sdk/workflow"

	salesdomain "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
	"github.com/edwingd18/Prueba-motorcycles/internal/durable/temporal/sequences"
)

const (
	// SaleRecordingWorkflowName is the public identifier for registering the workflow.
	SaleRecordingWorkflowName = "sales.workflows.Recording"
	// SaleRecordingTaskQueue is the queue consumed by the worker processing sale workflows.
	SaleRecordingTaskQueue = "SALE_RECORDING"
)

// SaleRecordingWorkflowInput captures the payload required to record a sale.
type SaleRecordingWorkflowInput struct {
	Sale    *salesdomain.Sale
	TraceID string
}

// SaleRecordingWorkflow orchestrates the activities needed to persist a sale aggregate.
func SaleRecordingWorkflow(ctx workflow.Context, input SaleRecordingWorkflowInput) (*salesdomain.Sale, error) {
	logger := workflow.GetLogger(ctx)
	saleNumber := ""
	if input.Sale != nil {
		saleNumber = input.Sale.SaleNumber
	}
	logger.Info("SaleRecordingWorkflow started", withTraceID(input.TraceID, "saleNumber", saleNumber)...)
	sale, err := sequences.RunSalePersistenceSequence(ctx, input.Sale)
	if err != nil {
		logger.Error("SaleRecordingWorkflow failed", withTraceID(input.TraceID, "saleNumber", saleNumber, "error", err)...)
		return nil, err
	}
	if sale != nil {
		logger.Info("SaleRecordingWorkflow completed", withTraceID(input.TraceID, "saleId", sale.ID)...)
	} else {
		logger.Info("SaleRecordingWorkflow completed", withTraceID(input.TraceID)...)
	}
	return sale, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
