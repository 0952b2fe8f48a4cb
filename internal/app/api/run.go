package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	dealershipserver "github.com/edwingd18/Prueba-motorcycles/go"

	catalogapp "github.com/edwingd18/Prueba-motorcycles/internal/domains/catalog/application"
	catalogdomain "github.com/edwingd18/Prueba-motorcycles/internal/domains/catalog/domain"
	partiesapp "github.com/edwingd18/Prueba-motorcycles/internal/domains/parties/application"
	partiesdomain "github.com/edwingd18/Prueba-motorcycles/internal/domains/parties/domain"
	salesdirectory "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/adapters/directory"
	salesmemory "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/adapters/memory"
	salesobs "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/adapters/observability"
	salespostgres "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/adapters/persistence/postgres"
	salesworkflows "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/adapters/workflows"
	salesapp "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/application"
	salesports "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
	platformmigrations "github.com/edwingd18/Prueba-motorcycles/internal/platform/migrations"
	platformobservability "github.com/edwingd18/Prueba-motorcycles/internal/platform/observability"
	platformpostgres "github.com/edwingd18/Prueba-motorcycles/internal/platform/postgres"
	"github.com/edwingd18/Prueba-motorcycles/internal/shared/crud"
)

// Run boots the dealership HTTP API with observability, repositories, and
// workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "dealership-api"
	cfg := LoadConfig()
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
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
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	services, err := BuildServices(db)
	if err != nil {
		return err
	}
	salesService := salesobs.New(
		services.Sales,
		salesobs.WithLogger(logger),
		salesobs.WithTracer(instruments.Tracer("internal.domains.sales.application")),
		salesobs.WithMeter(instruments.Meter("internal.domains.sales.application")),
	)

	var saleWorkflows salesports.WorkflowOrchestrator = salesworkflows.NewInlineSaleWorkflows(salesService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, recording sales inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		saleWorkflows = salesworkflows.NewTemporalSaleWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := dealershipserver.ApiHandleFunctions{
		CustomersAPI:   dealershipserver.NewCustomersAPI(services.Customers),
		EmployeesAPI:   dealershipserver.NewEmployeesAPI(services.Employees),
		MotorcyclesAPI: dealershipserver.NewMotorcyclesAPI(services.Motorcycles),
		SalesAPI:       dealershipserver.NewSalesAPI(salesService, saleWorkflows),
		DetailSalesAPI: dealershipserver.NewDetailSalesAPI(salesService),
	}

	router := dealershipserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("dealership API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("dealership API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// Services bundles the application services of every bounded context.
type Services struct {
	Customers   *partiesapp.CustomerService
	Employees   *partiesapp.EmployeeService
	Motorcycles *catalogapp.Service
	Sales       *salesapp.Service
}

// BuildServices wires repositories and services for every context. A nil db
// selects the in-memory repositories.
func BuildServices(db *gorm.DB) (*Services, error) {
	var (
		customerRepo   crud.Repository[partiesdomain.Customer, *partiesdomain.Customer]
		employeeRepo   crud.Repository[partiesdomain.Employee, *partiesdomain.Employee]
		motorcycleRepo crud.Repository[catalogdomain.Motorcycle, *catalogdomain.Motorcycle]
		saleRepo       salesports.Repository
	)
	if db != nil {
		var err error
		if customerRepo, err = crud.NewGormRepository[partiesdomain.Customer](db); err != nil {
			return nil, fmt.Errorf("failed to build customer repository: %w", err)
		}
		if employeeRepo, err = crud.NewGormRepository[partiesdomain.Employee](db); err != nil {
			return nil, fmt.Errorf("failed to build employee repository: %w", err)
		}
		if motorcycleRepo, err = crud.NewGormRepository[catalogdomain.Motorcycle](db); err != nil {
			return nil, fmt.Errorf("failed to build motorcycle repository: %w", err)
		}
		if saleRepo, err = salespostgres.NewRepository(db); err != nil {
			return nil, fmt.Errorf("failed to build sale repository: %w", err)
		}
	} else {
		customerRepo = crud.NewMemoryRepository[partiesdomain.Customer]()
		employeeRepo = crud.NewMemoryRepository[partiesdomain.Employee]()
		motorcycleRepo = crud.NewMemoryRepository[catalogdomain.Motorcycle]()
		saleRepo = salesmemory.NewRepository()
	}

	customers := partiesapp.NewCustomerService(customerRepo)
	employees := partiesapp.NewEmployeeService(employeeRepo)
	motorcycles := catalogapp.NewService(motorcycleRepo)
	sales := salesapp.NewService(
		saleRepo,
		salesdirectory.NewParties(customers, employees),
		salesdirectory.NewCatalog(motorcycles),
	)
	return &Services{
		Customers:   customers,
		Employees:   employees,
		Motorcycles: motorcycles,
		Sales:       sales,
	}, nil
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
