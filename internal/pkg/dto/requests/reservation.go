package requests

import "riraku-service/internal/app/models"

// CreateReservation is the storefront submit payload. Validation tags mirror
// the draft rules: name required and capped, phone required with a bounded
// digit count, email optional but well-formed when present.
type CreateReservation struct {
	Name            string                `json:"name" validate:"required,max=80"`
	Phone           string                `json:"phone" validate:"required,phone_digits"`
	Email           string                `json:"email,omitempty" validate:"omitempty,email"`
	CourseID        string                `json:"course_id,omitempty"`
	CourseLabel     string                `json:"course_label,omitempty"`
	DurationMinutes int                   `json:"duration_minutes,omitempty"`
	Notes           string                `json:"notes,omitempty"`
	DesiredStartAt  string                `json:"desired_start_at,omitempty"`
	SelectedSlots   []models.SelectedSlot `json:"selected_slots,omitempty"`
	RememberContact bool                  `json:"remember_contact,omitempty"`
}
