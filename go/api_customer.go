package dealershipserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	partiesapp "github.com/edwingd18/Prueba-motorcycles/internal/domains/parties/application"
	partiesdomain "github.com/edwingd18/Prueba-motorcycles/internal/domains/parties/domain"
)

// CustomersAPI wires HTTP transport with the customer service.
type CustomersAPI struct {
	service *partiesapp.CustomerService
}

// NewCustomersAPI creates a CustomersAPI backed by the provided service.
func NewCustomersAPI(service *partiesapp.CustomerService) CustomersAPI {
	return CustomersAPI{service: service}
}

// Post /api/customers
// Register a new customer
func (api *CustomersAPI) CreateCustomer(c *gin.Context) {
	var payload partiesdomain.Customer
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := api.service.Create(c.Request.Context(), &payload)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Get /api/customers
// List all customers
func (api *CustomersAPI) GetCustomers(c *gin.Context) {
	customers, err := api.service.List(c.Request.Context())
	if err != nil {
		respondReadError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// Get /api/customers/:id
// Load a single customer
func (api *CustomersAPI) GetCustomerById(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	customer, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Put /api/customers/:id
// Overwrite an existing customer
func (api *CustomersAPI) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload partiesdomain.Customer
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, &payload)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete /api/customers/:id
// Remove a customer
func (api *CustomersAPI) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondReadError(c, err)
		return
	}
	respondNoContent(c)
}
