package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_digits", validatePhoneDigits)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validatePhoneDigits accepts a phone field whose digit count, after
// stripping every non-digit character, lands in the 10..13 range.
func validatePhoneDigits(fl validator.FieldLevel) bool {
	digits := StripPhoneDigits(fl.Field().String())
	return len(digits) >= 10 && len(digits) <= 13
}
