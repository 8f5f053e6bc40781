package entity

import (
	"context"
	"strings"

	"storekeep/internal/core/apperror"
)

// Catalog is the base type for reference data with a display name.
// Product categories and suppliers embed it.
type Catalog struct {
	// ID is assigned from a named counter when the entity is created
	ID string `db:"id" json:"id"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	Timestamps
}

// GetID implements Identifiable.
func (c *Catalog) GetID() string {
	return c.ID
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
