// Package supplier provides the Supplier catalog.
package supplier

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"storekeep/internal/core/apperror"
	"storekeep/internal/core/entity"
)

// validate checks the contact rules; the HTTP binding applies the same tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Contact holds how a supplier is reached.
type Contact struct {
	Phone        string `db:"phone" json:"phone" validate:"omitempty,max=32,printascii"`
	OtherContact string `db:"other_contact" json:"otherContact" validate:"max=255"`
	Email        string `db:"email" json:"email" validate:"omitempty,email"`
}

// Address locates a supplier.
type Address struct {
	City       string `db:"city" json:"city"`
	District   string `db:"district" json:"district"`
	PostalCode string `db:"postal_code" json:"postalCode"`
}

// Supplier provides products and stock.
type Supplier struct {
	entity.Catalog
	entity.Lifecycle

	Contact
	Address
}

// NewSupplier creates a supplier with no identifier yet.
func NewSupplier(name string, contact Contact, address Address) *Supplier {
	return &Supplier{
		Catalog: entity.Catalog{Name: name},
		Contact: contact,
		Address: address,
	}
}

// Validate implements entity.Validatable interface.
func (s *Supplier) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}
	if err := s.ValidateStatus(ctx); err != nil {
		return err
	}

	if err := validate.Struct(s.Contact); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return err
		}
		fe := fieldErrs[0]
		return apperror.NewValidation("invalid " + fe.Field()).
			WithDetail("field", "contact."+fe.Field()).
			WithDetail("rule", fe.Tag())
	}

	return nil
}
