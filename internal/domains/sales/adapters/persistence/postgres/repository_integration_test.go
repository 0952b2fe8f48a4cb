//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	catalogdomain "github.com/edwingd18/Prueba-motorcycles/internal/domains/catalog/domain"
	partiesdomain "github.com/edwingd18/Prueba-motorcycles/internal/domains/parties/domain"
	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
	"github.com/edwingd18/Prueba-motorcycles/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("dealership_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	// Run migrations
	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

// seedReferences inserts the customer, employee, and motorcycles the sale rows
// point at. The real schema enforces those foreign keys.
func seedReferences(t *testing.T, db *gorm.DB) {
	t.Helper()
	customer := partiesdomain.Customer{
		FirstName:      "Laura",
		LastName:       "Gomez",
		Email:          "laura.gomez@example.com",
		Phone:          "3001234567",
		DocumentNumber: "CC-100200300",
		DocumentType:   partiesdomain.DocumentCedula,
		Status:         partiesdomain.CustomerActive,
	}
	require.NoError(t, db.Create(&customer).Error)

	employee := partiesdomain.Employee{
		FirstName:      "Carlos",
		LastName:       "Ruiz",
		Email:          "carlos.ruiz@example.com",
		DocumentNumber: "CC-400500600",
		DocumentType:   partiesdomain.DocumentCedula,
		JobTitle:       "Sales Advisor",
		Status:         partiesdomain.EmployeeActive,
	}
	require.NoError(t, db.Create(&employee).Error)

	available := true
	for _, m := range []catalogdomain.Motorcycle{
		{Code: "YAM-MT07", Name: "MT-07", Brand: "Yamaha", Model: "MT-07", Year: 2024, Type: catalogdomain.TypeStandard, Price: decimal.RequireFromString("7849.00"), Stock: 5, Available: &available},
		{Code: "KAW-Z650", Name: "Z650", Brand: "Kawasaki", Model: "Z650", Year: 2024, Type: catalogdomain.TypeStandard, Price: decimal.RequireFromString("8999.00"), Stock: 3, Available: &available},
		{Code: "HON-CB500F", Name: "CB500F", Brand: "Honda", Model: "CB500F", Year: 2023, Type: catalogdomain.TypeStandard, Price: decimal.RequireFromString("6799.00"), Stock: 2, Available: &available},
	} {
		motorcycle := m
		require.NoError(t, db.Create(&motorcycle).Error)
	}
}

func TestPostgresRepository_AggregateLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()
	seedReferences(t, db)

	repo, err := NewRepository(db)
	require.NoError(t, err)
	ctx := context.Background()

	sale := &domain.Sale{
		SaleNumber:    "S-2024-0001",
		CustomerID:    1,
		EmployeeID:    1,
		SaleDate:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:        "COMPLETED",
		Total:         decimal.RequireFromString("15698.00"),
		PaymentMethod: domain.PaymentFinancing,
		Details: []domain.DetailSale{
			{MotorcycleID: 1, Quantity: 2, UnitPrice: decimal.NewNullDecimal(decimal.RequireFromString("7849.00"))},
		},
	}

	created, err := repo.Create(ctx, sale)
	require.NoError(t, err)
	require.Len(t, created.Details, 1)
	require.True(t, created.Details[0].Subtotal.Valid)
	assert.True(t, created.Details[0].Subtotal.Decimal.Equal(decimal.RequireFromString("15698.00")))

	retrieved, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "S-2024-0001", retrieved.SaleNumber)
	assert.Equal(t, domain.PaymentFinancing, retrieved.PaymentMethod)
	require.Len(t, retrieved.Details, 1)

	// Replace the line set
	retrieved.Status = "CANCELLED"
	retrieved.Details = []domain.DetailSale{
		{MotorcycleID: 2, Quantity: 1, UnitPrice: decimal.NewNullDecimal(decimal.RequireFromString("8999.00")), Discount: decimal.RequireFromString("500.00")},
		{MotorcycleID: 3, Quantity: 1, UnitPrice: decimal.NewNullDecimal(decimal.RequireFromString("6799.00"))},
	}
	updated, err := repo.Update(ctx, retrieved, true)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", updated.Status)
	require.Len(t, updated.Details, 2)
	assert.True(t, updated.Details[0].Subtotal.Decimal.Equal(decimal.RequireFromString("8499.00")))

	// Delete removes the header and its lines
	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
	lines, err := repo.ListDetails(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestPostgresRepository_DuplicateSaleNumber(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()
	seedReferences(t, db)

	repo, err := NewRepository(db)
	require.NoError(t, err)
	ctx := context.Background()

	first := &domain.Sale{
		SaleNumber: "S-2024-0001",
		CustomerID: 1,
		EmployeeID: 1,
		SaleDate:   time.Now().UTC(),
		Status:     "PENDING",
		Total:      decimal.RequireFromString("100.00"),
	}
	_, err = repo.Create(ctx, first)
	require.NoError(t, err)

	duplicate := &domain.Sale{
		SaleNumber: "S-2024-0001",
		CustomerID: 1,
		EmployeeID: 1,
		SaleDate:   time.Now().UTC(),
		Status:     "PENDING",
		Total:      decimal.RequireFromString("200.00"),
	}
	_, err = repo.Create(ctx, duplicate)
	assert.Error(t, err)
}

func TestPostgresRepository_StandaloneDetails(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()
	seedReferences(t, db)

	repo, err := NewRepository(db)
	require.NoError(t, err)
	ctx := context.Background()

	sale, err := repo.Create(ctx, &domain.Sale{
		SaleNumber: "S-2024-0002",
		CustomerID: 1,
		EmployeeID: 1,
		SaleDate:   time.Now().UTC(),
		Status:     "PENDING",
		Total:      decimal.Zero,
	})
	require.NoError(t, err)

	detail, err := repo.SaveDetail(ctx, &domain.DetailSale{
		SaleID:       sale.ID,
		MotorcycleID: 3,
		Quantity:     1,
		UnitPrice:    decimal.NewNullDecimal(decimal.RequireFromString("6799.00")),
	})
	require.NoError(t, err)
	require.True(t, detail.Subtotal.Valid)
	assert.True(t, detail.Subtotal.Decimal.Equal(decimal.RequireFromString("6799.00")))

	fetched, err := repo.DetailByID(ctx, detail.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.ID, fetched.SaleID)

	require.NoError(t, repo.DeleteDetail(ctx, detail.ID))
	_, err = repo.DetailByID(ctx, detail.ID)
	assert.ErrorIs(t, err, ports.ErrDetailNotFound)
}
