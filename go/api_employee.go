package dealershipserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	partiesapp "github.com/edwingd18/Prueba-motorcycles/internal/domains/parties/application"
	partiesdomain "github.com/edwingd18/Prueba-motorcycles/internal/domains/parties/domain"
)

// EmployeesAPI wires HTTP transport with the employee service.
type EmployeesAPI struct {
	service *partiesapp.EmployeeService
}

// NewEmployeesAPI creates an EmployeesAPI backed by the provided service.
func NewEmployeesAPI(service *partiesapp.EmployeeService) EmployeesAPI {
	return EmployeesAPI{service: service}
}

// Post /api/employees
// Register a new employee
func (api *EmployeesAPI) CreateEmployee(c *gin.Context) {
	var payload partiesdomain.Employee
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

// Get /api/employees
// List all employees
func (api *EmployeesAPI) GetEmployees(c *gin.Context) {
	employees, err := api.service.List(c.Request.Context())
	if err != nil {
		respondReadError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// Get /api/employees/:id
// Load a single employee
func (api *EmployeesAPI) GetEmployeeById(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	employee, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// Put /api/employees/:id
// Overwrite an existing employee
func (api *EmployeesAPI) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload partiesdomain.Employee
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

// Delete /api/employees/:id
// Remove an employee
func (api *EmployeesAPI) DeleteEmployee(c *gin.Context) {
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
