package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	repo, err := NewRepository(db)
	require.NoError(t, err)
	return repo
}

func seedSale(number string) *domain.Sale {
	return &domain.Sale{
		SaleNumber:    number,
		CustomerID:    1,
		EmployeeID:    1,
		SaleDate:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:        "COMPLETED",
		Total:         dec("1950.00"),
		PaymentMethod: domain.PaymentCash,
		Details: []domain.DetailSale{
			{
				MotorcycleID: 1,
				Quantity:     2,
				UnitPrice:    decimal.NewNullDecimal(dec("1000.00")),
				Discount:     dec("50.00"),
			},
		},
	}
}

func TestCreatePersistsAggregate(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.Create(context.Background(), seedSale("S-001"))
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	require.Len(t, created.Details, 1)
	line := created.Details[0]
	assert.Equal(t, created.ID, line.SaleID)
	assert.NotZero(t, line.ID)
	// the persist hook derives the subtotal
	require.True(t, line.Subtotal.Valid)
	assert.True(t, line.Subtotal.Decimal.Equal(dec("1950.00")), "got %s", line.Subtotal.Decimal)
}

func TestCreateOverridesClientSuppliedSubtotal(t *testing.T) {
	repo := newTestRepository(t)
	sale := seedSale("S-001")
	sale.Details[0].Subtotal = decimal.NewNullDecimal(dec("123.45"))

	created, err := repo.Create(context.Background(), sale)
	require.NoError(t, err)

	require.True(t, created.Details[0].Subtotal.Valid)
	assert.True(t, created.Details[0].Subtotal.Decimal.Equal(dec("1950.00")))
}

func TestGetByIDUnknownSale(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestListReturnsAllSalesWithLines(t *testing.T) {
	repo := newTestRepository(t)
	_, err := repo.Create(context.Background(), seedSale("S-001"))
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), seedSale("S-002"))
	require.NoError(t, err)

	sales, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Len(t, sales[0].Details, 1)
	assert.Len(t, sales[1].Details, 1)
}

func TestUpdateHeaderOnlyKeepsLines(t *testing.T) {
	repo := newTestRepository(t)
	created, err := repo.Create(context.Background(), seedSale("S-001"))
	require.NoError(t, err)

	created.Status = "CANCELLED"
	created.Total = decimal.Zero
	updated, err := repo.Update(context.Background(), created, false)
	require.NoError(t, err)

	assert.Equal(t, "CANCELLED", updated.Status)
	assert.True(t, updated.Total.IsZero())
	require.Len(t, updated.Details, 1)
	assert.Equal(t, created.Details[0].ID, updated.Details[0].ID)
}

func TestUpdateReplacesLineSetAtomically(t *testing.T) {
	repo := newTestRepository(t)
	created, err := repo.Create(context.Background(), seedSale("S-001"))
	require.NoError(t, err)
	oldLineID := created.Details[0].ID

	created.Details = []domain.DetailSale{
		{
			MotorcycleID: 2,
			Quantity:     1,
			UnitPrice:    decimal.NewNullDecimal(dec("7849.00")),
		},
		{
			MotorcycleID: 3,
			Quantity:     1,
			UnitPrice:    decimal.NewNullDecimal(dec("8999.00")),
			Discount:     dec("500.00"),
		},
	}
	updated, err := repo.Update(context.Background(), created, true)
	require.NoError(t, err)

	require.Len(t, updated.Details, 2)
	for _, line := range updated.Details {
		assert.NotEqual(t, oldLineID, line.ID)
		assert.Equal(t, created.ID, line.SaleID)
		assert.True(t, line.Subtotal.Valid)
	}

	all, err := repo.ListDetails(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2, "replaced lines must be gone")
}

func TestUpdateUnknownSale(t *testing.T) {
	repo := newTestRepository(t)
	sale := seedSale("S-001")
	sale.ID = 42

	_, err := repo.Update(context.Background(), sale, false)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDeleteCascadesToLines(t *testing.T) {
	repo := newTestRepository(t)
	created, err := repo.Create(context.Background(), seedSale("S-001"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), created.ID))

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	remaining, err := repo.ListDetails(context.Background())
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestDeleteUnknownSale(t *testing.T) {
	repo := newTestRepository(t)
	assert.ErrorIs(t, repo.Delete(context.Background(), 42), ports.ErrNotFound)
}

func TestSaveDetailRecomputesSubtotal(t *testing.T) {
	repo := newTestRepository(t)
	created, err := repo.Create(context.Background(), seedSale("S-001"))
	require.NoError(t, err)
	line := created.Details[0]

	line.Quantity = 3
	line.Discount = dec("0.00")
	saved, err := repo.SaveDetail(context.Background(), &line)
	require.NoError(t, err)

	require.True(t, saved.Subtotal.Valid)
	assert.True(t, saved.Subtotal.Decimal.Equal(dec("3000.00")))
}

func TestSaveDetailWithoutPriceKeepsSubtotal(t *testing.T) {
	repo := newTestRepository(t)
	created, err := repo.Create(context.Background(), seedSale("S-001"))
	require.NoError(t, err)

	detail, err := repo.SaveDetail(context.Background(), &domain.DetailSale{
		SaleID:       created.ID,
		MotorcycleID: 2,
		Quantity:     1,
	})
	require.NoError(t, err)
	assert.False(t, detail.Subtotal.Valid)
}

func TestDetailByIDUnknownLine(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.DetailByID(context.Background(), 42)
	assert.ErrorIs(t, err, ports.ErrDetailNotFound)
}

func TestDeleteDetail(t *testing.T) {
	repo := newTestRepository(t)
	created, err := repo.Create(context.Background(), seedSale("S-001"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteDetail(context.Background(), created.Details[0].ID))
	assert.ErrorIs(t, repo.DeleteDetail(context.Background(), created.Details[0].ID), ports.ErrDetailNotFound)
}
