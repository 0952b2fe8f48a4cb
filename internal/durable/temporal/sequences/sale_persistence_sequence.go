package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	salesdomain "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
	saleactivities "github.com/edwingd18/Prueba-motorcycles/internal/durable/temporal/activities/sales"
)

// RunSalePersistenceSequence executes the ordered set of activities needed to persist a sale aggregate.
func RunSalePersistenceSequence(ctx workflow.Context, sale *salesdomain.Sale) (*salesdomain.Sale, error) {
	logger := workflow.GetLogger(ctx)
	saleNumber := ""
	if sale != nil {
		saleNumber = sale.SaleNumber
	}
	logger.Info("sale persistence sequence started", "saleNumber", saleNumber)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var recorded salesdomain.Sale
	err := workflow.ExecuteActivity(ctx, saleactivities.PersistSaleActivityName, sale).Get(ctx, &recorded)
	if err != nil {
		logger.Error("sale persistence sequence failed", "saleNumber", saleNumber, "error", err)
		return nil, err
	}
	logger.Info("sale persistence sequence completed", "saleId", recorded.ID)
	return &recorded, nil
}
