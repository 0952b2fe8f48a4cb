package application

import (
	"errors"
	"fmt"

	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
	"github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
)

// ErrInvalidInput wraps validation and referential failures so transport
// adapters can map them to a 400 response.
var ErrInvalidInput = errors.New("invalid sale input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrEmptySaleNumber),
		errors.Is(err, domain.ErrEmptyStatus),
		errors.Is(err, domain.ErrInvalidCustomer),
		errors.Is(err, domain.ErrInvalidEmployee),
		errors.Is(err, domain.ErrInvalidMotorcycle),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrNegativeDiscount),
		errors.Is(err, domain.ErrInvalidPayment),
		errors.Is(err, ports.ErrCustomerNotFound),
		errors.Is(err, ports.ErrEmployeeNotFound),
		errors.Is(err, ports.ErrMotorcycleNotFound):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
