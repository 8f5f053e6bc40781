package catalog_repo

import (
	"storekeep/internal/domain/catalogs/category"
	"storekeep/internal/infrastructure/storage/postgres"
)

const categoryTable = "product_categories"

// CategoryRepo implements category.Repository.
type CategoryRepo struct {
	*BaseCatalogRepo[*category.ProductCategory]
}

var _ category.Repository = (*CategoryRepo)(nil)

// NewCategoryRepo creates a new category repository.
func NewCategoryRepo(db postgres.QuerierProvider) *CategoryRepo {
	return &CategoryRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(db, Table[*category.ProductCategory]{
			Name:          categoryTable,
			Key:           "id",
			Entity:        "product category",
			Columns:       postgres.ExtractDBColumns[category.ProductCategory](),
			SearchColumns: []string{"name"},
			DefaultOrder:  "name ASC",
			New:           func() *category.ProductCategory { return &category.ProductCategory{} },
		}),
	}
}
