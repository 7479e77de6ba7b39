package contracts

import (
	"context"
	"riraku-service/internal/pkg/salon_dto"
)

// ReservationClient writes a reservation request to the backing service.
type ReservationClient interface {
	CreateReservation(ctx context.Context, request *salon_dto.CreateReservationRequest) (*salon_dto.CreateReservationResult, error)
}
