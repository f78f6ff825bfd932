// Package impl contains the application-specific business rules
// implementations.
package impl

import (
	domainerrors "agrodoctor/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// newValidator builds the struct validator the form inputs are checked with
// before any request leaves the client.
func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// checkInput runs struct validation and maps the first violation onto the
// domain validation errors, so screens show the same messages the mobile
// app alerts with.
func checkInput(validate *validator.Validate, input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) || len(violations) == 0 {
		return errors.Wrap(err, "validate input")
	}

	first := violations[0]
	switch first.Tag() {
	case "required":
		return domainerrors.ErrMissingFields
	case "eqfield":
		return domainerrors.ErrPasswordMismatch
	case "email":
		return domainerrors.NewBaseError(domainerrors.KindValidation,
			"Please enter a valid email address.", first.Field())
	case "min":
		return domainerrors.NewBaseError(domainerrors.KindValidation,
			"Password must be at least 6 characters long.", first.Field())
	default:
		return domainerrors.NewBaseError(domainerrors.KindValidation,
			"Please check the entered details.", first.Field())
	}
}
