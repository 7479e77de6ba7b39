package reservation

import (
	"riraku-service/internal/pkg/exceptions"
	"riraku-service/internal/pkg/utils"
)

type draftValidation struct {
	Name  string `validate:"required,max=80"`
	Phone string `validate:"required,phone_digits"`
	Email string `validate:"omitempty,email"`
}

// validateDraft checks the contact fields and returns every failure at once
// as a field -> reason map. An empty map means the draft is valid.
func validateDraft(draft Draft) map[string]string {
	err := utils.ValidateStruct(draftValidation{
		Name:  draft.Name,
		Phone: draft.Phone,
		Email: draft.Email,
	})
	if err == nil {
		return map[string]string{}
	}
	return exceptions.ValidationErrorMap(err)
}
