// Package product provides the Product catalog.
package product

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"storekeep/internal/core/apperror"
	"storekeep/internal/core/entity"
)

// Product is a sellable item identified by its SKU.
type Product struct {
	// SKU is derived from name, category, weight and the skuNumber counter
	SKU string `db:"sku" json:"sku"`

	Barcode     string `db:"barcode" json:"barcode"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`

	// SupplierID references suppliers.id
	SupplierID string `db:"supplier_id" json:"supplierId"`

	// CategoryID references product_categories.id
	CategoryID string `db:"category_id" json:"categoryId"`

	Weight            decimal.Decimal `db:"weight" json:"weight"`
	UnitOfMeasurement string          `db:"unit_of_measurement" json:"unitOfMeasurement"`
	Refrigerated      bool            `db:"refrigerated" json:"refrigerated"`
	MaximumStockUnit  int             `db:"maximum_stock_unit" json:"maximumStockUnit"`

	entity.Lifecycle
	entity.Timestamps
}

// GetID implements entity.Identifiable.
func (p *Product) GetID() string {
	return p.SKU
}

// WeightScale is the number of decimal places stored for a weight.
const WeightScale = 3

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if p.SupplierID == "" {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplierId")
	}
	if p.CategoryID == "" {
		return apperror.NewValidation("category is required").
			WithDetail("field", "categoryId")
	}
	if p.Weight.IsNegative() {
		return apperror.NewValidation("weight must not be negative").
			WithDetail("field", "weight")
	}
	// Stored with WeightScale places; the SKU must show the stored value.
	if !p.Weight.Equal(p.Weight.Round(WeightScale)) {
		return apperror.NewValidation("weight has more than 3 decimal places").
			WithDetail("field", "weight")
	}
	if p.MaximumStockUnit < 0 {
		return apperror.NewValidation("maximum stock unit must not be negative").
			WithDetail("field", "maximumStockUnit")
	}
	return p.ValidateStatus(ctx)
}
