package reservation

import (
	"context"
	"sync"
	"time"

	"riraku-service/internal/app/config"
	"riraku-service/internal/app/contracts"
	"riraku-service/internal/app/services/core/availability"
	"riraku-service/internal/app/services/core/notifier"
	"riraku-service/internal/pkg/civiltime"
	"riraku-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

// reservationUsecase keeps one Orchestrator per staff target so the
// re-entrancy guard and last-success state survive across requests aimed at
// the same staff member.
type reservationUsecase struct {
	mu            sync.Mutex
	orchestrators map[string]*Orchestrator

	availabilityUsecase availability.AvailabilityUsecase
	availabilityClient  contracts.AvailabilityClient
	reservationClient   contracts.ReservationClient
	profileRepository   contracts.ProfileRepository
	eventPublisher      contracts.EventPublisher
	lockerService       contracts.LockerService
	conflictNotifier    *notifier.ConflictNotifier
	clock               civiltime.Clock
	internalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewReservationUsecase(
	availabilityUsecase availability.AvailabilityUsecase,
	availabilityClient contracts.AvailabilityClient,
	reservationClient contracts.ReservationClient,
	profileRepository contracts.ProfileRepository,
	eventPublisher contracts.EventPublisher,
	lockerService contracts.LockerService,
	conflictNotifier *notifier.ConflictNotifier,
	clock civiltime.Clock,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) ReservationUsecase {
	return &reservationUsecase{
		orchestrators:       make(map[string]*Orchestrator),
		availabilityUsecase: availabilityUsecase,
		availabilityClient:  availabilityClient,
		reservationClient:   reservationClient,
		profileRepository:   profileRepository,
		eventPublisher:      eventPublisher,
		lockerService:       lockerService,
		conflictNotifier:    conflictNotifier,
		clock:               clock,
		internalConfig:      internalConfig,
		Log:                 logger,
	}
}

func (uc *reservationUsecase) Submit(ctx context.Context, staffID string, payload *requests.CreateReservation) (*SubmitOutcome, error) {
	orchestrator := uc.orchestratorFor(staffID)
	orchestrator.ApplyRequest(payload)
	return orchestrator.Submit(ctx)
}

func (uc *reservationUsecase) Summary(staffID string) string {
	return uc.orchestratorFor(staffID).CopySummary()
}

func (uc *reservationUsecase) LastSuccess(staffID string) (string, time.Time) {
	return uc.orchestratorFor(staffID).LastSuccess()
}

func (uc *reservationUsecase) orchestratorFor(staffID string) *Orchestrator {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if orchestrator, ok := uc.orchestrators[staffID]; ok {
		return orchestrator
	}

	orchestrator := NewOrchestrator(
		staffID,
		uc.availabilityClient,
		uc.reservationClient,
		uc.profileRepository,
		uc.eventPublisher,
		uc.lockerService,
		uc.conflictNotifier,
		uc.clock,
		uc.internalConfig,
		uc.Log,
	)
	orchestrator.OnCalendarRefresh(func() {
		weekStart := civiltime.ToCivilDate(uc.clock.Now())
		uc.availabilityUsecase.InvalidateWeek(context.Background(), staffID, weekStart)
	})
	uc.orchestrators[staffID] = orchestrator
	return orchestrator
}
