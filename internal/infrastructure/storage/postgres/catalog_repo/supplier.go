package catalog_repo

import (
	"storekeep/internal/domain/catalogs/supplier"
	"storekeep/internal/infrastructure/storage/postgres"
)

const supplierTable = "suppliers"

// SupplierRepo implements supplier.Repository.
type SupplierRepo struct {
	*BaseCatalogRepo[*supplier.Supplier]
}

var _ supplier.Repository = (*SupplierRepo)(nil)

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(db postgres.QuerierProvider) *SupplierRepo {
	return &SupplierRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(db, Table[*supplier.Supplier]{
			Name:          supplierTable,
			Key:           "id",
			Entity:        "supplier",
			Columns:       postgres.ExtractDBColumns[supplier.Supplier](),
			SearchColumns: []string{"name", "city"},
			DefaultOrder:  "name ASC",
			New:           func() *supplier.Supplier { return &supplier.Supplier{} },
		}),
	}
}
