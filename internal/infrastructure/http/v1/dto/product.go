package dto

import (
	"github.com/shopspring/decimal"

	"storekeep/internal/core/entity"
	"storekeep/internal/domain/catalogs/category"
	"storekeep/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
// The SKU is generated; a sku in the body is not read.
type CreateProductRequest struct {
	Barcode           string          `json:"barcode" binding:"max=64"`
	Name              string          `json:"name" binding:"required,max=255"`
	Description       string          `json:"description"`
	SupplierID        string          `json:"supplierId" binding:"required"`
	CategoryID        string          `json:"categoryId" binding:"required"`
	Weight            decimal.Decimal `json:"weight"`
	UnitOfMeasurement string          `json:"unitOfMeasurement" binding:"max=32"`
	Refrigerated      bool            `json:"refrigerated"`
	MaximumStockUnit  int             `json:"maximumStockUnit" binding:"min=0"`
	Status            entity.Status   `json:"status" binding:"entity_status"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := &product.Product{
		Barcode:           r.Barcode,
		Name:              r.Name,
		Description:       r.Description,
		SupplierID:        r.SupplierID,
		CategoryID:        r.CategoryID,
		Weight:            r.Weight,
		UnitOfMeasurement: r.UnitOfMeasurement,
		Refrigerated:      r.Refrigerated,
		MaximumStockUnit:  r.MaximumStockUnit,
	}
	p.Status = r.Status
	return p
}

// CreateCategoryRequest is the request body for creating a product category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateCategoryRequest) ToEntity() *category.ProductCategory {
	return category.NewProductCategory(r.Name, r.Description)
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	SKU               string          `json:"sku"`
	Barcode           string          `json:"barcode,omitempty"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	SupplierID        string          `json:"supplierId"`
	CategoryID        string          `json:"categoryId"`
	Weight            decimal.Decimal `json:"weight"`
	UnitOfMeasurement string          `json:"unitOfMeasurement"`
	Refrigerated      bool            `json:"refrigerated"`
	MaximumStockUnit  int             `json:"maximumStockUnit"`
	Status            entity.Status   `json:"status"`
	TimestampsResponse
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		SKU:                p.SKU,
		Barcode:            p.Barcode,
		Name:               p.Name,
		Description:        p.Description,
		SupplierID:         p.SupplierID,
		CategoryID:         p.CategoryID,
		Weight:             p.Weight,
		UnitOfMeasurement:  p.UnitOfMeasurement,
		Refrigerated:       p.Refrigerated,
		MaximumStockUnit:   p.MaximumStockUnit,
		Status:             p.Status,
		TimestampsResponse: FromTimestamps(p.Timestamps),
	}
}

// CategoryResponse is the response body for a product category.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TimestampsResponse
}

// FromCategory creates response DTO from domain entity.
func FromCategory(c *category.ProductCategory) *CategoryResponse {
	return &CategoryResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Description:        c.Description,
		TimestampsResponse: FromTimestamps(c.Timestamps),
	}
}
