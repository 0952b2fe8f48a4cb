package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/edwingd18/Prueba-motorcycles/internal/app/api"
	saleactivities "github.com/edwingd18/Prueba-motorcycles/internal/durable/temporal/activities/sales"
	saleworkflows "github.com/edwingd18/Prueba-motorcycles/internal/durable/temporal/workflows/sales"
	platformmigrations "github.com/edwingd18/Prueba-motorcycles/internal/platform/migrations"
	platformobservability "github.com/edwingd18/Prueba-motorcycles/internal/platform/observability"
	platformpostgres "github.com/edwingd18/Prueba-motorcycles/internal/platform/postgres"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()
	const serviceName = "dealership-worker"
	cfg := api.LoadConfig()
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectOrFallback(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()
	if db != nil {
		if err := platformmigrations.Run(db); err != nil {
			logger.Error("failed to migrate schema", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	services, err := api.BuildServices(db)
	if err != nil {
		logger.Error("failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}
	activities := saleactivities.NewActivities(services.Sales)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, saleworkflows.SaleRecordingTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(saleworkflows.SaleRecordingWorkflow, workflow.RegisterOptions{Name: saleworkflows.SaleRecordingWorkflowName})
	w.RegisterActivityWithOptions(activities.PersistSale, activity.RegisterOptions{Name: saleactivities.PersistSaleActivityName})

	logger.Info("worker listening", slog.String("taskQueue", saleworkflows.SaleRecordingTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
