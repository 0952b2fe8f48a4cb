package dealershipserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	salemapper "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/adapters/http/mapper"
	salesdomain "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/domain"
	salesports "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
)

// SalesAPI wires HTTP transport with the sales service and workflows.
type SalesAPI struct {
	service   salesports.Service
	workflows salesports.WorkflowOrchestrator
}

// NewSalesAPI creates a SalesAPI backed by the provided service.
func NewSalesAPI(service salesports.Service, workflows salesports.WorkflowOrchestrator) SalesAPI {
	return SalesAPI{service: service, workflows: workflows}
}

// Post /api/sales
// Record a sale with its line items
func (api *SalesAPI) CreateSale(c *gin.Context) {
	var payload salemapper.Sale
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	sale, _ := salemapper.ToDomain(&payload)
	recorded, err := api.recordSale(c.Request.Context(), sale)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, salemapper.FromDomain(recorded))
}

func (api *SalesAPI) recordSale(ctx context.Context, sale *salesdomain.Sale) (*salesdomain.Sale, error) {
	if api.workflows != nil {
		return api.workflows.RecordSale(ctx, sale)
	}
	return api.service.Create(ctx, sale)
}

// Get /api/sales
// List all sales with line items
func (api *SalesAPI) GetSales(c *gin.Context) {
	sales, err := api.service.List(c.Request.Context())
	if err != nil {
		respondReadError(c, err)
		return
	}
	payload := make([]salemapper.Sale, 0, len(sales))
	for _, sale := range sales {
		payload = append(payload, salemapper.FromDomain(sale))
	}
	c.JSON(http.StatusOK, payload)
}

// Get /api/sales/:id
// Load a single sale with line items
func (api *SalesAPI) GetSaleById(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	sale, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err)
		return
	}
	c.JSON(http.StatusOK, salemapper.FromDomain(sale))
}

// Get /api/sales/:id/details
// Load a sale with each line's motorcycle resolved
func (api *SalesAPI) GetSaleDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := api.service.GetWithDetails(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err)
		return
	}
	c.JSON(http.StatusOK, salemapper.FromDetailsView(view))
}

// Put /api/sales/:id
// Overwrite a sale, optionally replacing its line set
func (api *SalesAPI) UpdateSale(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload salemapper.Sale
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	sale, details := salemapper.ToDomain(&payload)
	updated, err := api.service.Update(c.Request.Context(), id, sale, details)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, salemapper.FromDomain(updated))
}

// Delete /api/sales/:id
// Remove a sale and every line item it owns
func (api *SalesAPI) DeleteSale(c *gin.Context) {
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
