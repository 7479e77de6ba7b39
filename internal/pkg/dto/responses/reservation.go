package responses

// ReservationSubmission reports the outcome of a submit call. FieldErrors is
// populated only for validation failures and always carries every failing
// field at once.
type ReservationSubmission struct {
	ReservationID string            `json:"reservation_id,omitempty"`
	Status        string            `json:"status"`
	Message       string            `json:"message,omitempty"`
	FieldErrors   map[string]string `json:"field_errors,omitempty"`
	SubmittedAt   string            `json:"submitted_at,omitempty"`
	Summary       string            `json:"summary,omitempty"`
}
