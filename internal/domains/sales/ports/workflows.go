package ports

import (
	"context"

	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
)

// WorkflowOrchestrator runs the durable sale recording flow. Implementations
// may execute on a workflow engine or inline as a fallback.
type WorkflowOrchestrator interface {
	RecordSale(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
}
