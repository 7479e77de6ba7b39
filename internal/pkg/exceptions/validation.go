package exceptions

import (
	"riraku-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatAllValidationErrors(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return constvars.ErrClientCannotProcessRequest
	}

	var messages []string
	for _, fieldErr := range validationErrors {
		fieldName := strings.ToLower(fieldErr.Field())
		messages = append(messages, fieldName+" "+validationMessageFor(fieldErr))
	}
	return strings.Join(messages, ", ")
}

// ValidationErrorMap flattens validator errors into a field -> reason map so
// every failing field is reported together instead of one at a time.
func ValidationErrorMap(err error) map[string]string {
	out := make(map[string]string)
	if err == nil {
		return out
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		out["request"] = constvars.ErrClientCannotProcessRequest
		return out
	}

	for _, fieldErr := range validationErrors {
		fieldName := strings.ToLower(fieldErr.Field())
		if _, exists := out[fieldName]; exists {
			continue
		}
		out[fieldName] = validationMessageFor(fieldErr)
	}
	return out
}

func validationMessageFor(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
	}
	return customMessage
}
