package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"flipdar-api/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("price_string", validatePriceString)
	_ = v.RegisterValidation("sort_field", validateSortField)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateTransactionType validates that an entry type is one of the ledger types
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(strings.ToLower(fl.Field().String()))
}

// validatePriceString validates that a price is a non-negative decimal string
func validatePriceString(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}

	price, err := decimal.NewFromString(value)
	if err != nil {
		return false
	}
	return !price.IsNegative()
}

// validateSortField validates that a sort key is an accepted ledger column
func validateSortField(fl validator.FieldLevel) bool {
	return models.IsValidSortField(strings.ToLower(fl.Field().String()))
}
