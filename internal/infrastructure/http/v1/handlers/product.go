package handlers

import (
	"storekeep/internal/domain/catalogs/category"
	"storekeep/internal/domain/catalogs/product"
	"storekeep/internal/infrastructure/http/v1/dto"
)

// ProductHTTPHandler - type alias for the product handler.
type ProductHTTPHandler = CatalogHandler[*product.Product, dto.CreateProductRequest]

// NewProductHandler wires the generic handler to the product service.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*product.Product, dto.CreateProductRequest]{
		Service: service.CatalogService,
		IDParam: "sku",
		Filters: map[string]string{
			"status":     "status",
			"supplierId": "supplier_id",
			"categoryId": "category_id",
			"barcode":    "barcode",
		},
		MapCreateDTO: func(req dto.CreateProductRequest) *product.Product {
			return req.ToEntity()
		},
		MapToDTO: func(p *product.Product) any {
			return dto.FromProduct(p)
		},
	})
}

// CategoryHTTPHandler - type alias for the product category handler.
type CategoryHTTPHandler = CatalogHandler[*category.ProductCategory, dto.CreateCategoryRequest]

// NewCategoryHandler wires the generic handler to the category service.
func NewCategoryHandler(base *BaseHandler, service *category.Service) *CategoryHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*category.ProductCategory, dto.CreateCategoryRequest]{
		Service: service.CatalogService,
		MapCreateDTO: func(req dto.CreateCategoryRequest) *category.ProductCategory {
			return req.ToEntity()
		},
		MapToDTO: func(c *category.ProductCategory) any {
			return dto.FromCategory(c)
		},
	})
}
