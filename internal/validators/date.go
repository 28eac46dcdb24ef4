package validators

import (
	"github.com/go-playground/validator/v10"

	"petparrk/internal/model"
)

// DateValidation accepts empty values and YYYY-MM-DD dates.
func DateValidation(fl validator.FieldLevel) bool {
	_, err := model.ParseDate(fl.Field().String())
	return err == nil
}
