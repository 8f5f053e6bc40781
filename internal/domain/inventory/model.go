// Package inventory provides stock records: units on hand per product and supplier.
package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"storekeep/internal/core/apperror"
	"storekeep/internal/core/entity"
)

// Inventory is the stock record of one product from one supplier.
type Inventory struct {
	ID string `db:"id" json:"id"`

	// ProductSKU references products.sku
	ProductSKU string `db:"product_sku" json:"productSku"`

	// SupplierID references suppliers.id
	SupplierID string `db:"supplier_id" json:"supplierId"`

	UnitsAvailable      int             `db:"units_available" json:"unitsAvailable"`
	ReservedUnits       int             `db:"reserved_units" json:"reservedUnits"`
	IncomingQuantity    int             `db:"incoming_quantity" json:"incomingQuantity"`
	ReorderPoint        int             `db:"reorder_point" json:"reorderPoint"`
	UnitSellingPrice    decimal.Decimal `db:"unit_selling_price" json:"unitSellingPrice"`
	TotalUnitsPurchased int             `db:"total_units_purchased" json:"totalUnitsPurchased"`
	TotalCost           decimal.Decimal `db:"total_cost" json:"totalCost"`
	ExpiryDate          *time.Time      `db:"expiry_date" json:"expiryDate,omitempty"`

	entity.Lifecycle
	entity.Timestamps
}

// GetID implements entity.Identifiable.
func (i *Inventory) GetID() string {
	return i.ID
}

// SetUnitsAvailable records the units on hand.
// Fewer than one unit forces OUT_OF_STOCK. Restocking does not change the
// status back; that is left to an explicit status change.
func (i *Inventory) SetUnitsAvailable(n int) {
	i.UnitsAvailable = n
	if n < 1 {
		i.Status = entity.StatusOutOfStock
	}
}

// BelowReorderPoint reports whether the record should be replenished.
func (i *Inventory) BelowReorderPoint() bool {
	return i.UnitsAvailable <= i.ReorderPoint
}

// Validate implements entity.Validatable interface.
func (i *Inventory) Validate(ctx context.Context) error {
	if i.ProductSKU == "" {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productSku")
	}
	if i.SupplierID == "" {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplierId")
	}

	counts := []struct {
		field string
		value int
	}{
		{"unitsAvailable", i.UnitsAvailable},
		{"reservedUnits", i.ReservedUnits},
		{"incomingQuantity", i.IncomingQuantity},
		{"reorderPoint", i.ReorderPoint},
		{"totalUnitsPurchased", i.TotalUnitsPurchased},
	}
	for _, c := range counts {
		if c.value < 0 {
			return apperror.NewValidation(c.field + " must not be negative").
				WithDetail("field", c.field)
		}
	}

	if i.UnitSellingPrice.IsNegative() {
		return apperror.NewValidation("unit selling price must not be negative").
			WithDetail("field", "unitSellingPrice")
	}
	if i.TotalCost.IsNegative() {
		return apperror.NewValidation("total cost must not be negative").
			WithDetail("field", "totalCost")
	}

	return i.ValidateStatus(ctx)
}
