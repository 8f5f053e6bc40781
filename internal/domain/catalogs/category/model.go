// Package category provides the product category catalog.
package category

import (
	"context"

	"storekeep/internal/core/entity"
)

// ProductCategory groups products. Its name contributes the second letter of a SKU.
// Categories carry no status.
type ProductCategory struct {
	entity.Catalog

	Description string `db:"description" json:"description"`
}

// NewProductCategory creates a category with no identifier yet.
func NewProductCategory(name, description string) *ProductCategory {
	return &ProductCategory{
		Catalog:     entity.Catalog{Name: name},
		Description: description,
	}
}

// Validate implements entity.Validatable interface.
func (c *ProductCategory) Validate(ctx context.Context) error {
	return c.Catalog.Validate(ctx)
}
