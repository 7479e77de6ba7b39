package reservation

import "riraku-service/internal/app/models"

// Draft is the working reservation owned by the Orchestrator. It is mutated
// only through the orchestrator's actions; nothing else writes these fields.
type Draft struct {
	Name            string
	Phone           string
	Email           string
	CourseID        string
	CourseLabel     string
	DurationMinutes int
	Notes           string
	DesiredStartAt  string
	SelectedSlots   []models.SelectedSlot
	RememberContact bool
}

// SubmitOutcome reports one Submit call. FieldErrors is only set for
// validation failures and then always carries every failing field.
type SubmitOutcome struct {
	ReservationID string
	Status        string
	Message       string
	FieldErrors   map[string]string
}

const (
	outcomeStatusConfirmed  = "confirmed"
	outcomeStatusRejected   = "rejected"
	outcomeStatusConflict   = "conflict"
	outcomeStatusInvalid    = "invalid"
	outcomeStatusDisabled   = "disabled"
	outcomeStatusInProgress = "in_progress"
)
