package product

import (
	"context"
	"fmt"

	"storekeep/internal/core/apperror"
	"storekeep/internal/core/numerator"
	"storekeep/internal/core/tx"
	"storekeep/internal/domain"
	"storekeep/internal/domain/catalogs/category"
)

// CategoryReader looks up categories; the category name feeds the SKU.
type CategoryReader interface {
	GetByID(ctx context.Context, id string) (*category.ProductCategory, error)
}

// SupplierChecker checks supplier references.
type SupplierChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Service provides business logic for the Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
	repo       Repository
	sequencer  numerator.Sequencer
	categories CategoryReader
	suppliers  SupplierChecker
}

// NewService creates a new Product service.
func NewService(
	repo Repository,
	txm tx.Manager,
	sequencer numerator.Sequencer,
	categories CategoryReader,
	suppliers SupplierChecker,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		sequencer:      sequencer,
		categories:     categories,
		suppliers:      suppliers,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

// prepareForCreate checks references, then assigns the SKU, creation time and status.
func (s *Service) prepareForCreate(ctx context.Context, p *Product) error {
	if err := domain.RequireExisting(ctx, s.suppliers.Exists, "supplierId", p.SupplierID); err != nil {
		return err
	}

	cat, err := s.categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewValidation("categoryId does not reference an existing record").
				WithDetail("field", "categoryId").
				WithDetail("value", p.CategoryID)
		}
		return fmt.Errorf("load category: %w", err)
	}

	if err := s.checkBarcodeFree(ctx, p.Barcode, ""); err != nil {
		return err
	}

	seq, err := domain.NextIdentifier(ctx, s.sequencer, numerator.CounterSKU)
	if err != nil {
		return err
	}

	p.SKU = numerator.ProductSKU(numerator.SKUParts{
		ProductName:  p.Name,
		CategoryName: cat.Name,
		Weight:       p.Weight,
		Unit:         p.UnitOfMeasurement,
		Sequence:     seq,
	})
	p.Stamp()
	p.Activate()
	return nil
}

func (s *Service) prepareForUpdate(ctx context.Context, p *Product) error {
	if err := s.checkBarcodeFree(ctx, p.Barcode, p.SKU); err != nil {
		return err
	}
	p.Touch()
	return nil
}

// checkBarcodeFree fails with a conflict when another product already uses barcode.
func (s *Service) checkBarcodeFree(ctx context.Context, barcode, excludeSKU string) error {
	if barcode == "" {
		return nil
	}
	existing, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		// Not found is OK; other errors must be propagated.
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.SKU != excludeSKU {
		return apperror.NewConflict("product with this barcode already exists").
			WithDetail("barcode", barcode)
	}
	return nil
}
