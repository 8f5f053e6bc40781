package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"storekeep/internal/core/apperror"
	"storekeep/internal/core/entity"
)

// RegisterValidators installs the custom binding rules on gin's validator
// and makes field errors use json names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	// Empty is allowed: the service applies the ACTIVE default.
	return v.RegisterValidation("entity_status", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || entity.Status(s).IsValid()
	})
}

// bindingError turns a bind failure into a validation AppError with one
// detail per field.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewValidation("invalid request body").WithDetail("error", err.Error())
	}

	appErr := apperror.NewValidation("validation failed")
	for _, fe := range verrs {
		appErr = appErr.WithDetail(fieldPath(fe), validationMessage(fe))
	}
	return appErr
}

// fieldPath drops the top-level struct name: "CreateSupplierRequest.contact.email" -> "contact.email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "datetime":
		return fmt.Sprintf("must match %s", fe.Param())
	case "entity_status":
		return "is not a known status"
	}
	return "is invalid"
}
