// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound requests.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type requestValidator struct {
	validate *validator.Validate
}

// New builds the echo.Validator used by the HTTP server.
func New() echo.Validator {
	return &requestValidator{validate: validator.New()}
}

// Validate checks the struct tags of a bound request.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
