package handler

import (
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/barakhava1/CashoryLoanTracker/internal/domain"
)

// newValidator builds a validator with the decimal and loan-type rules the
// request DTOs use: dgt (> 0), dgte (>= 0), loantype.
func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("dgt", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.GreaterThan(decimal.Zero)
	})

	_ = v.RegisterValidation("dgte", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.GreaterThanOrEqual(decimal.Zero)
	})

	_ = v.RegisterValidation("loantype", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.LoanTypes, fl.Field().String())
	})

	return v
}
