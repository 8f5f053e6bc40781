package dto

import (
	"github.com/shopspring/decimal"

	"storekeep/internal/core/entity"
	"storekeep/internal/domain/inventory"
)

// --- Request DTOs ---

// CreateInventoryRequest is the request body for creating a stock record.
type CreateInventoryRequest struct {
	ProductSKU          string          `json:"productSku" binding:"required"`
	SupplierID          string          `json:"supplierId" binding:"required"`
	UnitsAvailable      int             `json:"unitsAvailable" binding:"min=0"`
	ReservedUnits       int             `json:"reservedUnits" binding:"min=0"`
	IncomingQuantity    int             `json:"incomingQuantity" binding:"min=0"`
	ReorderPoint        int             `json:"reorderPoint" binding:"min=0"`
	UnitSellingPrice    decimal.Decimal `json:"unitSellingPrice"`
	TotalUnitsPurchased int             `json:"totalUnitsPurchased" binding:"min=0"`
	TotalCost           decimal.Decimal `json:"totalCost"`
	ExpiryDate          *string         `json:"expiryDate" binding:"omitempty,datetime=2006-01-02"`
	Status              entity.Status   `json:"status" binding:"entity_status"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateInventoryRequest) ToEntity() *inventory.Inventory {
	inv := &inventory.Inventory{
		ProductSKU:          r.ProductSKU,
		SupplierID:          r.SupplierID,
		UnitsAvailable:      r.UnitsAvailable,
		ReservedUnits:       r.ReservedUnits,
		IncomingQuantity:    r.IncomingQuantity,
		ReorderPoint:        r.ReorderPoint,
		UnitSellingPrice:    r.UnitSellingPrice,
		TotalUnitsPurchased: r.TotalUnitsPurchased,
		TotalCost:           r.TotalCost,
		ExpiryDate:          parseDate(r.ExpiryDate),
	}
	inv.Status = r.Status
	return inv
}

// SetUnitsRequest is the request body for PUT /inventory/:id/units.
type SetUnitsRequest struct {
	UnitsAvailable *int `json:"unitsAvailable" binding:"required,min=0"`
}

// --- Response DTOs ---

// InventoryResponse is the response body for a stock record.
type InventoryResponse struct {
	ID                  string          `json:"id"`
	ProductSKU          string          `json:"productSku"`
	SupplierID          string          `json:"supplierId"`
	UnitsAvailable      int             `json:"unitsAvailable"`
	ReservedUnits       int             `json:"reservedUnits"`
	IncomingQuantity    int             `json:"incomingQuantity"`
	ReorderPoint        int             `json:"reorderPoint"`
	BelowReorderPoint   bool            `json:"belowReorderPoint"`
	UnitSellingPrice    decimal.Decimal `json:"unitSellingPrice"`
	TotalUnitsPurchased int             `json:"totalUnitsPurchased"`
	TotalCost           decimal.Decimal `json:"totalCost"`
	ExpiryDate          *string         `json:"expiryDate,omitempty"`
	Status              entity.Status   `json:"status"`
	TimestampsResponse
}

// FromInventory creates response DTO from domain entity.
func FromInventory(i *inventory.Inventory) *InventoryResponse {
	return &InventoryResponse{
		ID:                  i.ID,
		ProductSKU:          i.ProductSKU,
		SupplierID:          i.SupplierID,
		UnitsAvailable:      i.UnitsAvailable,
		ReservedUnits:       i.ReservedUnits,
		IncomingQuantity:    i.IncomingQuantity,
		ReorderPoint:        i.ReorderPoint,
		BelowReorderPoint:   i.BelowReorderPoint(),
		UnitSellingPrice:    i.UnitSellingPrice,
		TotalUnitsPurchased: i.TotalUnitsPurchased,
		TotalCost:           i.TotalCost,
		ExpiryDate:          formatDate(i.ExpiryDate),
		Status:              i.Status,
		TimestampsResponse:  FromTimestamps(i.Timestamps),
	}
}
