package inventory

import (
	"context"

	"storekeep/internal/domain"
)

// Repository defines the interface for Inventory persistence.
type Repository interface {
	domain.CatalogRepository[*Inventory]

	// GetForUpdate retrieves the record with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id string) (*Inventory, error)
}
