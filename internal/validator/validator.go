// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currency_amount", validateCurrencyAmount)
	}
}

// validateCurrencyAmount accepts positive amounts with at most two decimal
// places, matching the ledger's money columns.
func validateCurrencyAmount(fl validator.FieldLevel) bool {
	amount := decimal.NewFromFloat(fl.Field().Float())
	if amount.Sign() <= 0 {
		return false
	}
	return amount.Round(2).Equal(amount)
}
