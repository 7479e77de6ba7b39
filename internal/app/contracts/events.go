package contracts

import "context"

// ReservationEvent is published to the notification queue after a confirmed
// submission.
type ReservationEvent struct {
	ReservationID string `json:"reservation_id"`
	StaffID       string `json:"staff_id"`
	CustomerName  string `json:"customer_name"`
	StartAt       string `json:"start_at"`
	EndAt         string `json:"end_at"`
	Channel       string `json:"channel"`
}

type EventPublisher interface {
	PublishReservationConfirmed(ctx context.Context, event *ReservationEvent) error
}
