package category

import (
	"storekeep/internal/domain"
)

// Repository defines the interface for ProductCategory persistence.
type Repository interface {
	domain.CatalogRepository[*ProductCategory]
}
