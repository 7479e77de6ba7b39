package reservation

import (
	"context"
	"time"

	"riraku-service/internal/pkg/dto/requests"
)

// ReservationUsecase runs the full submission pipeline for one storefront
// request: validation, pre-submit slot verification, the write itself, and
// the confirmed/rejected aftermath.
type ReservationUsecase interface {
	Submit(ctx context.Context, staffID string, payload *requests.CreateReservation) (*SubmitOutcome, error)

	// Summary returns the shareable text of the latest confirmed submission
	// for the staff target, or "" if none succeeded yet.
	Summary(staffID string) string

	// LastSuccess returns the id and clock-stamped instant of the latest
	// confirmed submission for the staff target.
	LastSuccess(staffID string) (string, time.Time)
}
