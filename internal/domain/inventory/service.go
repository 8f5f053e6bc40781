package inventory

import (
	"context"

	"storekeep/internal/core/apperror"
	"storekeep/internal/core/numerator"
	"storekeep/internal/core/tx"
	"storekeep/internal/domain"
	"storekeep/pkg/logger"
)

// Checker reports whether a referenced record exists.
type Checker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Service provides business logic for stock records.
type Service struct {
	*domain.CatalogService[*Inventory]
	repo      Repository
	txm       tx.Manager
	sequencer numerator.Sequencer
	products  Checker
	suppliers Checker
}

// NewService creates a new Inventory service.
func NewService(
	repo Repository,
	txm tx.Manager,
	sequencer numerator.Sequencer,
	products Checker,
	suppliers Checker,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Inventory]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "inventory",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		txm:            txm,
		sequencer:      sequencer,
		products:       products,
		suppliers:      suppliers,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(func(ctx context.Context, i *Inventory) error {
		i.Touch()
		return nil
	})
	base.Hooks().OnAfterCreate(svc.reportReorder)
	base.Hooks().OnAfterUpdate(svc.reportReorder)

	return svc
}

// prepareForCreate checks references and assigns the IN identifier.
// Status defaults to ACTIVE, then the units rule may turn it into OUT_OF_STOCK.
func (s *Service) prepareForCreate(ctx context.Context, i *Inventory) error {
	if err := domain.RequireExisting(ctx, s.products.Exists, "productSku", i.ProductSKU); err != nil {
		return err
	}
	if err := domain.RequireExisting(ctx, s.suppliers.Exists, "supplierId", i.SupplierID); err != nil {
		return err
	}

	value, err := domain.NextIdentifier(ctx, s.sequencer, numerator.CounterInventory)
	if err != nil {
		return err
	}

	i.Stamp()
	i.ID = numerator.InventoryID(value, i.CreatedOn.Year())
	i.Activate()
	i.SetUnitsAvailable(i.UnitsAvailable)
	return nil
}

// reportReorder warns when a record is at or below its reorder point.
func (s *Service) reportReorder(ctx context.Context, i *Inventory) error {
	if i.BelowReorderPoint() {
		logger.Warn(ctx, "inventory below reorder point",
			"id", i.ID,
			"product_sku", i.ProductSKU,
			"units_available", i.UnitsAvailable,
			"reorder_point", i.ReorderPoint,
		)
	}
	return nil
}

// SetUnits changes the units on hand of an existing record under a row lock.
func (s *Service) SetUnits(ctx context.Context, id string, units int) (*Inventory, error) {
	if units < 0 {
		return nil, apperror.NewValidation("unitsAvailable must not be negative").
			WithDetail("field", "unitsAvailable")
	}

	var rec *Inventory
	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		rec, err = s.repo.GetForUpdate(ctx, id)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("inventory", id)
			}
			return err
		}
		rec.SetUnitsAvailable(units)
		return s.Update(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
