package handlers

import (
	"github.com/gin-gonic/gin"

	"storekeep/internal/domain/inventory"
	"storekeep/internal/infrastructure/http/v1/dto"
)

// InventoryHandler handles HTTP requests for stock records.
type InventoryHandler struct {
	*CatalogHandler[*inventory.Inventory, dto.CreateInventoryRequest]
	service *inventory.Service
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(base *BaseHandler, service *inventory.Service) *InventoryHandler {
	catalog := NewCatalogHandler(base, CatalogHandlerConfig[*inventory.Inventory, dto.CreateInventoryRequest]{
		Service: service.CatalogService,
		Filters: map[string]string{
			"status":     "status",
			"productSku": "product_sku",
			"supplierId": "supplier_id",
		},
		MapCreateDTO: func(req dto.CreateInventoryRequest) *inventory.Inventory {
			return req.ToEntity()
		},
		MapToDTO: func(i *inventory.Inventory) any {
			return dto.FromInventory(i)
		},
	})

	return &InventoryHandler{
		CatalogHandler: catalog,
		service:        service,
	}
}

// SetUnits handles PUT /inventory/:id/units.
func (h *InventoryHandler) SetUnits(c *gin.Context) {
	var req dto.SetUnitsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	rec, err := h.service.SetUnits(c.Request.Context(), c.Param("id"), *req.UnitsAvailable)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromInventory(rec))
}
