package observability

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/application"
	salesdomain "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
	salesports "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
)

// stubInner answers Create and CreateDetail the way the core service does,
// including its rejection of nil input.
type stubInner struct {
	salesports.Service
	createCalls       int
	createDetailCalls int
}

func (s *stubInner) Create(_ context.Context, sale *salesdomain.Sale) (*salesdomain.Sale, error) {
	s.createCalls++
	if sale == nil {
		return nil, fmt.Errorf("%w: sale is nil", application.ErrInvalidInput)
	}
	return sale, nil
}

func (s *stubInner) CreateDetail(_ context.Context, detail *salesdomain.DetailSale) (*salesdomain.DetailSale, error) {
	s.createDetailCalls++
	if detail == nil {
		return nil, fmt.Errorf("%w: detail is nil", application.ErrInvalidInput)
	}
	return detail, nil
}

func TestCreateNilSaleDelegatesWithoutPanic(t *testing.T) {
	inner := &stubInner{}
	svc := New(inner)

	result, err := svc.Create(context.Background(), nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, application.ErrInvalidInput)
	assert.Equal(t, 1, inner.createCalls)
}

func TestCreateDetailNilDetailDelegatesWithoutPanic(t *testing.T) {
	inner := &stubInner{}
	svc := New(inner)

	result, err := svc.CreateDetail(context.Background(), nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, application.ErrInvalidInput)
	assert.Equal(t, 1, inner.createDetailCalls)
}

func TestCreatePassesSaleThrough(t *testing.T) {
	inner := &stubInner{}
	svc := New(inner)
	sale := &salesdomain.Sale{SaleNumber: "S-100", CustomerID: 1, EmployeeID: 1}

	result, err := svc.Create(context.Background(), sale)
	require.NoError(t, err)
	assert.Equal(t, "S-100", result.SaleNumber)
	assert.Equal(t, 1, inner.createCalls)
}
