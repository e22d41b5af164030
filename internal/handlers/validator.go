package handlers

import (
	"github.com/labstack/echo/v4"

	"flipdar-api/internal/validation"
)

// CustomValidator adapts the shared validator to the echo.Validator interface
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates the request validator with the domain rules registered
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.GetValidate().Struct(i)
}
