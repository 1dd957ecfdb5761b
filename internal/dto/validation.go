package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// decimalGTEZero implements the "dgte0" binding tag: the field must be a
// non-negative decimal. Monetary inputs never carry a sign in this API.
func decimalGTEZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return !d.IsNegative()
}

// RegisterCustomValidators installs the custom binding validations on gin's
// validator engine. Call once at startup before serving requests.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("dgte0", decimalGTEZero)
}
