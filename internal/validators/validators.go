// Package validators registers the custom struct-validation rules used by form inputs.
package validators

import (
	"math"

	"github.com/go-playground/validator/v10"

	"petparrk/internal/format"
)

// New returns a validator with the custom rules registered:
//
//	microchip: empty, or 9, 10 or 15 digits
//	iso_date:  empty, or YYYY-MM-DD
//	positive:  a finite number greater than zero
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("microchip", MicrochipValidation)
	_ = v.RegisterValidation("iso_date", DateValidation)
	_ = v.RegisterValidation("positive", PositiveValidation)
	return v
}

// MicrochipValidation accepts empty values and digit strings of an accepted microchip length.
func MicrochipValidation(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if format.Digits(s) != s {
		return false
	}
	return format.ValidMicrochipLength(len(s))
}

// PositiveValidation accepts finite floats above zero. NaN and Inf are rejected.
func PositiveValidation(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}
