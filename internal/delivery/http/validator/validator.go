// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "passport/internal/domain/errors"
)

type echoValidator struct {
	validate *validatorlib.Validate
}

// New builds the validator installed on the Echo server.
func New() echo.Validator {
	return &echoValidator{validate: validatorlib.New()}
}

// Validate checks a bound request struct against its validate tags.
// Failures surface as the domain's validation error so the centralized error
// handler maps them to a 400 envelope.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
