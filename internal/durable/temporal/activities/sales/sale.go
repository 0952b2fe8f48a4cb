package sales

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	salesdomain "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
	salesports "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
)

// PersistSaleActivityName persists a sale aggregate through the sales service.
const PersistSaleActivityName = "sales.activities.PersistSale"

// Activities groups activities that operate on the sales bounded context.
type Activities struct {
	recordService salesports.Service
}

// NewActivities wires the sales service into the Temporal activities bundle.
func NewActivities(recordService salesports.Service) *Activities {
	return &Activities{recordService: recordService}
}

// PersistSale stores a new sale aggregate with its line items.
func (a *Activities) PersistSale(ctx context.Context, sale *salesdomain.Sale) (*salesdomain.Sale, error) {
	logger := activity.GetLogger(ctx)
	saleNumber := ""
	if sale != nil {
		saleNumber = sale.SaleNumber
	}
	if a == nil || a.recordService == nil {
		logger.Error("sale persist activity not initialized", "saleNumber", saleNumber)
		return nil, errors.New("sale persist activity not initialized")
	}
	logger.Info("PersistSale activity started", "saleNumber", saleNumber)
	recorded, err := a.recordService.Create(ctx, sale)
	if err != nil {
		logger.Error("PersistSale activity failed", "saleNumber", saleNumber, "error", err)
		return nil, err
	}
	logger.Info("PersistSale activity completed", "saleId", recorded.ID)
	return recorded, nil
}
