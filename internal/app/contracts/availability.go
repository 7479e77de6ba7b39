package contracts

import (
	"context"
	"riraku-service/internal/pkg/salon_dto"
	"time"
)

// AvailabilityClient reads slot data from the availability backing service.
type AvailabilityClient interface {
	// FindSlotsByStaffID returns the raw slot list for one staff member
	// within [from, to). The per-slot status vocabulary is not trusted and
	// must go through normalization.
	FindSlotsByStaffID(ctx context.Context, staffID string, from, to time.Time) ([]salon_dto.RawSlot, error)

	// VerifySlot is the point query issued immediately before submission to
	// re-check a single chosen instant.
	VerifySlot(ctx context.Context, staffID string, startAt time.Time) (*salon_dto.SlotVerification, error)
}
