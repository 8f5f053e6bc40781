package supplier

import (
	"context"

	"storekeep/internal/core/numerator"
	"storekeep/internal/core/tx"
	"storekeep/internal/domain"
)

// Service provides business logic for the Supplier catalog.
type Service struct {
	*domain.CatalogService[*Supplier]
	sequencer numerator.Sequencer
}

// NewService creates a new Supplier service.
func NewService(repo Repository, txm tx.Manager, sequencer numerator.Sequencer) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Supplier]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "supplier",
	})

	svc := &Service{
		CatalogService: base,
		sequencer:      sequencer,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(func(ctx context.Context, s *Supplier) error {
		s.Touch()
		return nil
	})

	return svc
}

// prepareForCreate assigns the SU identifier, the creation time and the ACTIVE default.
func (s *Service) prepareForCreate(ctx context.Context, sup *Supplier) error {
	value, err := domain.NextIdentifier(ctx, s.sequencer, numerator.CounterSupplier)
	if err != nil {
		return err
	}
	sup.Stamp()
	sup.ID = numerator.SupplierID(value, sup.CreatedOn.Year())
	sup.Activate()
	return nil
}
