package constvars

const (
	GetAvailabilitySuccessMessage   = "Successfully retrieved availability calendar"
	CreateReservationSuccessMessage = "Successfully submitted reservation request"
)
