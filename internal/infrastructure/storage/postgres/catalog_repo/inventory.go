package catalog_repo

import (
	"storekeep/internal/domain/inventory"
	"storekeep/internal/infrastructure/storage/postgres"
)

const inventoryTable = "inventory"

// InventoryRepo implements inventory.Repository.
type InventoryRepo struct {
	*BaseCatalogRepo[*inventory.Inventory]
}

var _ inventory.Repository = (*InventoryRepo)(nil)

// NewInventoryRepo creates a new inventory repository.
func NewInventoryRepo(db postgres.QuerierProvider) *InventoryRepo {
	return &InventoryRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(db, Table[*inventory.Inventory]{
			Name:          inventoryTable,
			Key:           "id",
			Entity:        "inventory",
			Columns:       postgres.ExtractDBColumns[inventory.Inventory](),
			SearchColumns: []string{"id", "product_sku"},
			DefaultOrder:  "created_on DESC",
			New:           func() *inventory.Inventory { return &inventory.Inventory{} },
		}),
	}
}
