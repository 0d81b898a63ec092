// Package validator adapts go-playground/validator to echo.
package validator

import (
	"navshortcut/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a new validator
func New() *CustomValidator {
	return &CustomValidator{validator: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// Messages flattens validation errors into field -> failed rule pairs for error details
func Messages(err error) map[string]string {
	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return nil
	}

	messages := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		messages[fe.Field()] = fe.Tag()
	}

	return messages
}

var _ echo.Validator = (*CustomValidator)(nil)
