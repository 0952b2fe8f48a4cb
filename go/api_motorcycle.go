package dealershipserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/edwingd18/Prueba-motorcycles/internal/domains/catalog/application"
	catalogdomain "github.com/edwingd18/Prueba-motorcycles/internal/domains/catalog/domain"
)

// MotorcyclesAPI wires HTTP transport with the catalog service.
type MotorcyclesAPI struct {
	service *catalogapp.Service
}

// NewMotorcyclesAPI creates a MotorcyclesAPI backed by the provided service.
func NewMotorcyclesAPI(service *catalogapp.Service) MotorcyclesAPI {
	return MotorcyclesAPI{service: service}
}

// Post /api/motorcycles
// Add a motorcycle to the catalog
func (api *MotorcyclesAPI) CreateMotorcycle(c *gin.Context) {
	var payload catalogdomain.Motorcycle
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

// Get /api/motorcycles
// List the catalog
func (api *MotorcyclesAPI) GetMotorcycles(c *gin.Context) {
	motorcycles, err := api.service.List(c.Request.Context())
	if err != nil {
		respondReadError(c, err)
		return
	}
	c.JSON(http.StatusOK, motorcycles)
}

// Get /api/motorcycles/:id
// Load a single catalog entry
func (api *MotorcyclesAPI) GetMotorcycleById(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	motorcycle, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err)
		return
	}
	c.JSON(http.StatusOK, motorcycle)
}

// Put /api/motorcycles/:id
// Overwrite an existing catalog entry
func (api *MotorcyclesAPI) UpdateMotorcycle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload catalogdomain.Motorcycle
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

// Delete /api/motorcycles/:id
// Remove a catalog entry
func (api *MotorcyclesAPI) DeleteMotorcycle(c *gin.Context) {
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
