package dealershipserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	salemapper "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/adapters/http/mapper"
	salesports "github.com/edwingd18/Prueba-motorcycles/internal/domains/sales/ports"
)

// DetailSalesAPI exposes line items as a standalone resource.
type DetailSalesAPI struct {
	service salesports.Service
}

// NewDetailSalesAPI creates a DetailSalesAPI backed by the provided service.
func NewDetailSalesAPI(service salesports.Service) DetailSalesAPI {
	return DetailSalesAPI{service: service}
}

// Post /api/detail-sales
// Add a line item to an existing sale
func (api *DetailSalesAPI) CreateDetailSale(c *gin.Context) {
	var payload salemapper.DetailSale
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := api.service.CreateDetail(c.Request.Context(), salemapper.ToDetailDomain(&payload))
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, salemapper.FromDetailDomain(created))
}

// Get /api/detail-sales
// List every line item across all sales
func (api *DetailSalesAPI) GetDetailSales(c *gin.Context) {
	details, err := api.service.ListDetails(c.Request.Context())
	if err != nil {
		respondReadError(c, err)
		return
	}
	payload := make([]salemapper.DetailSale, 0, len(details))
	for _, detail := range details {
		payload = append(payload, salemapper.FromDetailDomain(detail))
	}
	c.JSON(http.StatusOK, payload)
}

// Get /api/detail-sales/:id
// Load a single line item
func (api *DetailSalesAPI) GetDetailSaleById(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	detail, err := api.service.DetailByID(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err)
		return
	}
	c.JSON(http.StatusOK, salemapper.FromDetailDomain(detail))
}

// Put /api/detail-sales/:id
// Overwrite a line item; the subtotal is recomputed on persist
func (api *DetailSalesAPI) UpdateDetailSale(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload salemapper.DetailSale
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := api.service.UpdateDetail(c.Request.Context(), id, salemapper.ToDetailDomain(&payload))
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, salemapper.FromDetailDomain(updated))
}

// Delete /api/detail-sales/:id
// Remove a line item
func (api *DetailSalesAPI) DeleteDetailSale(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeleteDetail(c.Request.Context(), id); err != nil {
		respondReadError(c, err)
		return
	}
	respondNoContent(c)
}
