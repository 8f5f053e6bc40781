package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"storekeep/internal/domain/catalogs/product"
	"storekeep/internal/infrastructure/storage/postgres"
)

const productTable = "products"

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

var _ product.Repository = (*ProductRepo)(nil)

// NewProductRepo creates a new product repository.
func NewProductRepo(db postgres.QuerierProvider) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(db, Table[*product.Product]{
			Name:          productTable,
			Key:           "sku",
			Entity:        "product",
			Columns:       postgres.ExtractDBColumns[product.Product](),
			SearchColumns: []string{"name", "sku", "barcode"},
			DefaultOrder:  "name ASC",
			New:           func() *product.Product { return &product.Product{} },
		}),
	}
}

// FindByBarcode retrieves product by barcode.
func (r *ProductRepo) FindByBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"barcode": barcode}).
		Limit(1)
	return r.FindOne(ctx, q, barcode)
}
