package handlers

import (
	"storekeep/internal/domain/catalogs/supplier"
	"storekeep/internal/infrastructure/http/v1/dto"
)

// SupplierHTTPHandler - type alias for the supplier handler.
type SupplierHTTPHandler = CatalogHandler[*supplier.Supplier, dto.CreateSupplierRequest]

// NewSupplierHandler wires the generic handler to the supplier service.
func NewSupplierHandler(base *BaseHandler, service *supplier.Service) *SupplierHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*supplier.Supplier, dto.CreateSupplierRequest]{
		Service: service.CatalogService,
		Filters: map[string]string{
			"status": "status",
			"city":   "city",
		},
		MapCreateDTO: func(req dto.CreateSupplierRequest) *supplier.Supplier {
			return req.ToEntity()
		},
		MapToDTO: func(s *supplier.Supplier) any {
			return dto.FromSupplier(s)
		},
	})
}
