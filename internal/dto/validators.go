package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidations installs validations used by the DTO binding
// tags on gin's validator engine. Call once at startup.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("decimal_nonneg", decimalNonNegative)
}

// decimalNonNegative accepts decimal.Decimal fields that are >= 0.
func decimalNonNegative(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return !d.IsNegative()
}
