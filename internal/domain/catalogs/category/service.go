package category

import (
	"context"

	"storekeep/internal/core/numerator"
	"storekeep/internal/core/tx"
	"storekeep/internal/domain"
)

// Service provides business logic for the category catalog.
type Service struct {
	*domain.CatalogService[*ProductCategory]
	sequencer numerator.Sequencer
}

// NewService creates a new category service.
func NewService(repo Repository, txm tx.Manager, sequencer numerator.Sequencer) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*ProductCategory]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "product category",
	})

	svc := &Service{
		CatalogService: base,
		sequencer:      sequencer,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(func(ctx context.Context, c *ProductCategory) error {
		c.Touch()
		return nil
	})

	return svc
}

// prepareForCreate assigns the CAT identifier and creation time.
// Any id supplied by the caller is replaced.
func (s *Service) prepareForCreate(ctx context.Context, c *ProductCategory) error {
	value, err := domain.NextIdentifier(ctx, s.sequencer, numerator.CounterProductCategory)
	if err != nil {
		return err
	}
	c.ID = numerator.CategoryID(value)
	c.Stamp()
	return nil
}
