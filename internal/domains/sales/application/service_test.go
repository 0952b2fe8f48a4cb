package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/adapters/memory"
	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
)

type fakeDirectory struct {
	customers   map[int64]*ports.CustomerRef
	employees   map[int64]*ports.EmployeeRef
	motorcycles map[int64]*ports.MotorcycleRef
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		customers: map[int64]*ports.CustomerRef{
			1: {ID: 1, FirstName: "Maria", LastName: "Lopez", Email: "maria@example.com"},
		},
		employees: map[int64]*ports.EmployeeRef{
			1: {ID: 1, FirstName: "Juan", LastName: "Perez", Email: "juan@example.com", JobTitle: "Sales Rep"},
		},
		motorcycles: map[int64]*ports.MotorcycleRef{
			1: {ID: 1, Code: "MT-07", Name: "MT-07", Brand: "Yamaha", Price: dec("8999.00")},
			2: {ID: 2, Code: "Z650", Name: "Z650", Brand: "Kawasaki", Price: dec("7849.00")},
		},
	}
}

func (f *fakeDirectory) CustomerByID(_ context.Context, id int64) (*ports.CustomerRef, error) {
	if ref, ok := f.customers[id]; ok {
		return ref, nil
	}
	return nil, ports.ErrCustomerNotFound
}

func (f *fakeDirectory) EmployeeByID(_ context.Context, id int64) (*ports.EmployeeRef, error) {
	if ref, ok := f.employees[id]; ok {
		return ref, nil
	}
	return nil, ports.ErrEmployeeNotFound
}

func (f *fakeDirectory) MotorcycleByID(_ context.Context, id int64) (*ports.MotorcycleRef, error) {
	if ref, ok := f.motorcycles[id]; ok {
		return ref, nil
	}
	return nil, ports.ErrMotorcycleNotFound
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService() (*Service, ports.Repository) {
	repo := memory.NewRepository()
	dir := newFakeDirectory()
	svc := NewService(repo, dir, dir, WithClock(func() time.Time {
		return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	}))
	return svc, repo
}

func validSale() *domain.Sale {
	return &domain.Sale{
		SaleNumber:    "S-001",
		CustomerID:    1,
		EmployeeID:    1,
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

func TestCreateComputesSubtotalAndBindsLines(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validSale())
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	require.Len(t, created.Details, 1)
	line := created.Details[0]
	assert.Equal(t, created.ID, line.SaleID)
	assert.NotZero(t, line.ID)
	require.True(t, line.Subtotal.Valid)
	assert.True(t, line.Subtotal.Decimal.Equal(dec("1950.00")), "got %s", line.Subtotal.Decimal)
}

func TestCreateDefaultsSaleDate(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validSale())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), created.SaleDate)
}

func TestCreateKeepsTotalAsSupplied(t *testing.T) {
	svc, _ := newTestService()
	sale := validSale()
	// deliberately inconsistent with the line subtotals
	sale.Total = dec("1.00")

	created, err := svc.Create(context.Background(), sale)
	require.NoError(t, err)
	assert.True(t, created.Total.Equal(dec("1.00")))
}

func TestCreateRejectsUnknownCustomer(t *testing.T) {
	svc, _ := newTestService()
	sale := validSale()
	sale.CustomerID = 99

	_, err := svc.Create(context.Background(), sale)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, ports.ErrCustomerNotFound)
}

func TestCreateRejectsUnknownEmployee(t *testing.T) {
	svc, _ := newTestService()
	sale := validSale()
	sale.EmployeeID = 99

	_, err := svc.Create(context.Background(), sale)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, ports.ErrEmployeeNotFound)
}

func TestCreateRejectsInvalidAggregate(t *testing.T) {
	svc, _ := newTestService()
	sale := validSale()
	sale.Details[0].Quantity = 0

	_, err := svc.Create(context.Background(), sale)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestGetByIDMaterializesDetails(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), validSale())
	require.NoError(t, err)

	loaded, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Details, 1)
	assert.Equal(t, created.Details[0].ID, loaded.Details[0].ID)
}

func TestGetByIDUnknownSale(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestGetWithDetailsResolvesMotorcycles(t *testing.T) {
	svc, _ := newTestService()
	sale := validSale()
	sale.Details = append(sale.Details, domain.DetailSale{
		MotorcycleID: 2,
		Quantity:     1,
		UnitPrice:    decimal.NewNullDecimal(dec("7849.00")),
	})
	created, err := svc.Create(context.Background(), sale)
	require.NoError(t, err)

	view, err := svc.GetWithDetails(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, view.Motorcycles, 2)
	assert.Equal(t, "Yamaha", view.Motorcycles[1].Brand)
	assert.Equal(t, "Kawasaki", view.Motorcycles[2].Brand)
}

func TestGetWithDetailsSkipsRemovedMotorcycles(t *testing.T) {
	svc, _ := newTestService()
	sale := validSale()
	sale.Details = append(sale.Details, domain.DetailSale{
		MotorcycleID: 99,
		Quantity:     1,
		UnitPrice:    decimal.NewNullDecimal(dec("100.00")),
	})
	created, err := svc.Create(context.Background(), sale)
	require.NoError(t, err)

	view, err := svc.GetWithDetails(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, view.Sale.Details, 2)
	assert.Contains(t, view.Motorcycles, int64(1))
	assert.NotContains(t, view.Motorcycles, int64(99))
}

func TestUpdateOverwritesEveryHeaderField(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), validSale())
	require.NoError(t, err)

	incoming := &domain.Sale{
		SaleNumber:    "S-002",
		CustomerID:    1,
		EmployeeID:    1,
		SaleDate:      time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Status:        "CANCELLED",
		Total:         dec("0.00"),
		PaymentMethod: domain.PaymentFinancing,
	}
	updated, err := svc.Update(context.Background(), created.ID, incoming, nil)
	require.NoError(t, err)

	assert.Equal(t, "S-002", updated.SaleNumber)
	assert.Equal(t, "CANCELLED", updated.Status)
	assert.Equal(t, domain.PaymentFinancing, updated.PaymentMethod)
	assert.True(t, updated.Total.IsZero())
	// nil detail slice keeps the stored line set
	require.Len(t, updated.Details, 1)
	assert.Equal(t, created.Details[0].ID, updated.Details[0].ID)
}

func TestUpdateReplacesLineSetWithFreshIdentities(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), validSale())
	require.NoError(t, err)
	oldLineID := created.Details[0].ID

	replacement := []domain.DetailSale{
		{
			// stale client-supplied identity must be discarded
			ID:           999,
			MotorcycleID: 2,
			Quantity:     1,
			UnitPrice:    decimal.NewNullDecimal(dec("7849.00")),
		},
	}
	incoming := validSale()
	updated, err := svc.Update(context.Background(), created.ID, incoming, &replacement)
	require.NoError(t, err)

	require.Len(t, updated.Details, 1)
	line := updated.Details[0]
	assert.NotEqual(t, int64(999), line.ID)
	assert.NotEqual(t, oldLineID, line.ID)
	assert.Equal(t, created.ID, line.SaleID)
	assert.Equal(t, int64(2), line.MotorcycleID)
	require.True(t, line.Subtotal.Valid)
	assert.True(t, line.Subtotal.Decimal.Equal(dec("7849.00")))
}

func TestUpdateWithEmptySliceClearsLines(t *testing.T) {
	svc, repo := newTestService()
	created, err := svc.Create(context.Background(), validSale())
	require.NoError(t, err)

	empty := []domain.DetailSale{}
	updated, err := svc.Update(context.Background(), created.ID, validSale(), &empty)
	require.NoError(t, err)
	assert.Empty(t, updated.Details)

	remaining, err := repo.ListDetails(context.Background())
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestUpdateUnknownSale(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), 42, validSale(), nil)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDeleteCascadesToLines(t *testing.T) {
	svc, repo := newTestService()
	created, err := svc.Create(context.Background(), validSale())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	remaining, err := repo.ListDetails(context.Background())
	require.NoError(t, err)
	assert.Empty(t, remaining, "owned lines must not survive their sale")
}

func TestDeleteUnknownSale(t *testing.T) {
	svc, _ := newTestService()
	assert.ErrorIs(t, svc.Delete(context.Background(), 42), ports.ErrNotFound)
}

func TestCreateDetailRequiresExistingSale(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateDetail(context.Background(), &domain.DetailSale{
		SaleID:       42,
		MotorcycleID: 1,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateDetailRequiresKnownMotorcycle(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), validSale())
	require.NoError(t, err)

	_, err = svc.CreateDetail(context.Background(), &domain.DetailSale{
		SaleID:       created.ID,
		MotorcycleID: 77,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, ports.ErrMotorcycleNotFound)
}

func TestCreateDetailComputesSubtotalOnPersist(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), validSale())
	require.NoError(t, err)

	detail, err := svc.CreateDetail(context.Background(), &domain.DetailSale{
		SaleID:       created.ID,
		MotorcycleID: 2,
		Quantity:     3,
		UnitPrice:    decimal.NewNullDecimal(dec("100.00")),
		Discount:     dec("25.00"),
	})
	require.NoError(t, err)
	require.True(t, detail.Subtotal.Valid)
	assert.True(t, detail.Subtotal.Decimal.Equal(dec("275.00")))
}

func TestUpdateDetailOverwritesAndRecomputes(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), validSale())
	require.NoError(t, err)
	lineID := created.Details[0].ID

	updated, err := svc.UpdateDetail(context.Background(), lineID, &domain.DetailSale{
		SaleID:       created.ID,
		MotorcycleID: 2,
		Quantity:     3,
		UnitPrice:    decimal.NewNullDecimal(dec("500.00")),
		Discount:     dec("100.00"),
		Notes:        "fleet discount",
	})
	require.NoError(t, err)

	assert.Equal(t, lineID, updated.ID)
	assert.Equal(t, int64(2), updated.MotorcycleID)
	assert.Equal(t, "fleet discount", updated.Notes)
	require.True(t, updated.Subtotal.Valid)
	assert.True(t, updated.Subtotal.Decimal.Equal(dec("1400.00")))
}

func TestUpdateDetailUnknownLine(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateDetail(context.Background(), 42, &domain.DetailSale{MotorcycleID: 1, Quantity: 1})
	assert.ErrorIs(t, err, ports.ErrDetailNotFound)
}

func TestDeleteDetailLeavesSaleInPlace(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), validSale())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDetail(context.Background(), created.Details[0].ID))

	loaded, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Details)
}
