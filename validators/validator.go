// Package validators adapts go-playground/validator to echo's Validator
// interface. Failures come back as ValidationErrors so handlers map them
// to 400 responses like any other bad input.
package validators

import (
	"github.com/Ibrahim-Omar1/DNNDON/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// Validator wraps a shared validator instance.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator for request payload structs.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks struct tags on i.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return apperrors.NewValidation("%s", err.Error())
	}
	return nil
}
