package salon_dto

// CreateReservationRequest is the submission payload written to the
// reservation backing service.
type CreateReservationRequest struct {
	StaffID        string          `json:"staff_id"`
	Customer       CustomerContact `json:"customer"`
	DesiredStartAt string          `json:"desired_start_at"`
	DesiredEndAt   string          `json:"desired_end_at"`
	Notes          string          `json:"notes,omitempty"`
	Channel        string          `json:"channel"`
	PreferredSlots []PreferredSlot `json:"preferred_slots,omitempty"`
}

type CustomerContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// PreferredSlot is one candidate the customer picked on the grid. StatusLabel
// carries the UI status ("open" or "tentative") for the operator's reference.
type PreferredSlot struct {
	DesiredStartAt string `json:"desired_start_at"`
	DesiredEndAt   string `json:"desired_end_at"`
	StatusLabel    string `json:"status_label,omitempty"`
}

const (
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusRejected  = "rejected"
)

// CreateReservationResult is a transport-success response body. Status
// "rejected" is a business-level rejection distinct from a non-2xx failure.
type CreateReservationResult struct {
	ID      string   `json:"id"`
	Status  string   `json:"status"`
	Reasons []string `json:"reasons,omitempty"`
}

// UpstreamErrorBody is the non-2xx detail shape. Detail may be a single
// string or a list of reasons, so it is decoded leniently.
type UpstreamErrorBody struct {
	Detail any `json:"detail"`
}
