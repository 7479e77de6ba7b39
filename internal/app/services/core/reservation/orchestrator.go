package reservation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"riraku-service/internal/app/config"
	"riraku-service/internal/app/contracts"
	"riraku-service/internal/app/models"
	"riraku-service/internal/app/services/core/notifier"
	"riraku-service/internal/pkg/civiltime"
	"riraku-service/internal/pkg/constvars"
	"riraku-service/internal/pkg/dto/requests"
	"riraku-service/internal/pkg/exceptions"
	"riraku-service/internal/pkg/salon_dto"

	"go.uber.org/zap"
)

// Orchestrator owns the reservation draft and drives submission. All draft
// mutation goes through its methods; Submit is re-entrancy guarded so a
// double-tap while a request is in flight is a no-op.
type Orchestrator struct {
	mu         sync.Mutex
	submitting bool
	staffID    string
	draft      Draft

	lastReservationID string
	lastSubmittedAt   time.Time
	lastSummary       string

	AvailabilityClient contracts.AvailabilityClient
	ReservationClient  contracts.ReservationClient
	ProfileRepository  contracts.ProfileRepository
	EventPublisher     contracts.EventPublisher
	LockerService      contracts.LockerService
	Notifier           *notifier.ConflictNotifier
	Clock              civiltime.Clock
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger

	onCalendarRefresh func()
}

func NewOrchestrator(
	staffID string,
	availabilityClient contracts.AvailabilityClient,
	reservationClient contracts.ReservationClient,
	profileRepository contracts.ProfileRepository,
	eventPublisher contracts.EventPublisher,
	lockerService contracts.LockerService,
	conflictNotifier *notifier.ConflictNotifier,
	clock civiltime.Clock,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		staffID:            staffID,
		AvailabilityClient: availabilityClient,
		ReservationClient:  reservationClient,
		ProfileRepository:  profileRepository,
		EventPublisher:     eventPublisher,
		LockerService:      lockerService,
		Notifier:           conflictNotifier,
		Clock:              clock,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

// OnCalendarRefresh registers the callback fired after a conflict so the
// caller can re-fetch availability for the affected week.
func (o *Orchestrator) OnCalendarRefresh(fn func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.onCalendarRefresh = fn
}

// ApplyRequest copies a storefront payload into the draft.
func (o *Orchestrator) ApplyRequest(payload *requests.CreateReservation) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.draft = Draft{
		Name:            strings.TrimSpace(payload.Name),
		Phone:           strings.TrimSpace(payload.Phone),
		Email:           strings.TrimSpace(payload.Email),
		CourseID:        payload.CourseID,
		CourseLabel:     payload.CourseLabel,
		DurationMinutes: payload.DurationMinutes,
		Notes:           payload.Notes,
		DesiredStartAt:  payload.DesiredStartAt,
		SelectedSlots:   append([]models.SelectedSlot(nil), payload.SelectedSlots...),
		RememberContact: payload.RememberContact,
	}
}

// SetField updates one draft field by name. Unknown field names are ignored.
func (o *Orchestrator) SetField(field, value string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch field {
	case "name":
		o.draft.Name = strings.TrimSpace(value)
	case "phone":
		o.draft.Phone = strings.TrimSpace(value)
	case "email":
		o.draft.Email = strings.TrimSpace(value)
	case "notes":
		o.draft.Notes = value
	case "desired_start":
		o.draft.DesiredStartAt = value
	}
}

// ToggleRememberContact flips the opt-in and returns the new value.
func (o *Orchestrator) ToggleRememberContact() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.draft.RememberContact = !o.draft.RememberContact
	return o.draft.RememberContact
}

// SelectCourse records the chosen course and its duration.
func (o *Orchestrator) SelectCourse(courseID, courseLabel string, durationMinutes int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.draft.CourseID = courseID
	o.draft.CourseLabel = courseLabel
	o.draft.DurationMinutes = durationMinutes
}

// SetSelectedSlots replaces the candidate slots, e.g. after grid toggles.
func (o *Orchestrator) SetSelectedSlots(slots []models.SelectedSlot) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.draft.SelectedSlots = append([]models.SelectedSlot(nil), slots...)
}

// Draft returns a copy of the working draft.
func (o *Orchestrator) Draft() Draft {
	o.mu.Lock()
	defer o.mu.Unlock()

	draft := o.draft
	draft.SelectedSlots = append([]models.SelectedSlot(nil), o.draft.SelectedSlots...)
	return draft
}

// Submitting reports whether a submit call is in flight.
func (o *Orchestrator) Submitting() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.submitting
}

// LastSuccess returns the id and instant of the latest confirmed submission.
func (o *Orchestrator) LastSuccess() (string, time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastReservationID, o.lastSubmittedAt
}

// Submit runs the pipeline. A concurrent call while one is already in flight
// returns a nil outcome and no error. On failure of any kind the draft is
// preserved so the customer can correct and retry; only a confirmed
// submission clears the notes and candidate slots.
func (o *Orchestrator) Submit(ctx context.Context) (*SubmitOutcome, error) {
	o.mu.Lock()
	if o.submitting {
		o.mu.Unlock()
		o.Log.Warn("orchestrator.Submit ignored re-entrant call", zap.String("staff_id", o.staffID))
		return nil, nil
	}
	o.submitting = true
	draft := o.draft
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.submitting = false
		o.mu.Unlock()
	}()

	fieldErrors := validateDraft(draft)
	startAt, startOK := o.resolveDesiredStart(draft)
	if !startOK {
		fieldErrors["desired_start"] = "must be a valid time"
	}
	if len(fieldErrors) > 0 {
		return &SubmitOutcome{Status: outcomeStatusInvalid, FieldErrors: fieldErrors},
			exceptions.BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevValidationFailed)
	}

	if !o.submissionAllowed() {
		return &SubmitOutcome{Status: outcomeStatusDisabled, Message: constvars.ErrClientSubmissionDisabled},
			exceptions.ErrSubmissionDisabled(nil)
	}

	endAt := startAt.Add(o.reservationDuration(draft))

	if o.staffID != "" {
		release, acquired := o.lockSlot(ctx, startAt)
		if !acquired {
			return o.conflictOutcome(startAt, constvars.ErrClientSlotNoLongerAvailable)
		}
		defer release()

		if outcome, conflicted, err := o.verifySlot(ctx, startAt); conflicted {
			return outcome, err
		}
	}

	result, err := o.ReservationClient.CreateReservation(ctx, o.buildPayload(draft, startAt, endAt))
	if err != nil {
		return nil, err
	}

	if result.Status == salon_dto.ReservationStatusRejected {
		return o.handleRejection(startAt, result.Reasons)
	}

	o.finishConfirmed(ctx, draft, result, startAt, endAt)
	return &SubmitOutcome{
		ReservationID: result.ID,
		Status:        outcomeStatusConfirmed,
		Message:       constvars.CreateReservationSuccessMessage,
	}, nil
}

// CopySummary renders the latest confirmed submission as shareable text. It
// is empty until a submission succeeds.
func (o *Orchestrator) CopySummary() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastSummary
}

// resolveDesiredStart picks the submission instant: the first parseable
// selected slot wins, then an explicit desired start, then a rounded
// "a couple of hours from now" fallback. An explicit value that does not
// parse is a validation failure rather than silently replaced.
func (o *Orchestrator) resolveDesiredStart(draft Draft) (time.Time, bool) {
	for _, slot := range draft.SelectedSlots {
		if startAt, err := civiltime.ParseInstant(slot.StartAt); err == nil {
			return startAt, true
		}
	}
	if draft.DesiredStartAt != "" {
		startAt, err := civiltime.ParseInstant(draft.DesiredStartAt)
		if err != nil {
			return time.Time{}, false
		}
		return startAt, true
	}

	fallback := o.Clock.Now().In(civiltime.Zone).
		Add(time.Duration(constvars.DefaultDesiredStartOffsetMinutes) * time.Minute)
	return fallback.Truncate(30 * time.Minute), true
}

func (o *Orchestrator) reservationDuration(draft Draft) time.Duration {
	minutes := draft.DurationMinutes
	if minutes <= 0 {
		minutes = o.InternalConfig.App.DefaultDurationMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// submissionAllowed blocks writes against placeholder staff targets unless
// the environment explicitly opts into demo submissions.
func (o *Orchestrator) submissionAllowed() bool {
	if o.InternalConfig.App.AllowDemoSubmission {
		return true
	}
	return o.staffID != "" && !strings.HasPrefix(o.staffID, "demo-")
}

// lockSlot serializes the verify-then-submit window per (staff, instant).
// A lock infrastructure failure is logged and the submission proceeds, so
// Redis downtime never blocks bookings.
func (o *Orchestrator) lockSlot(ctx context.Context, startAt time.Time) (func(), bool) {
	key := fmt.Sprintf("reservation:slot_lock:%s:%s", o.staffID, startAt.UTC().Format(time.RFC3339))
	expiration := time.Duration(o.InternalConfig.App.SlotLockSeconds) * time.Second

	acquired, lockValue, err := o.LockerService.TryLock(ctx, key, expiration)
	if err != nil {
		o.Log.Warn("orchestrator.lockSlot proceeding without lock", zap.String("key", key), zap.Error(err))
		return func() {}, true
	}
	if !acquired {
		o.Log.Info("orchestrator.lockSlot slot held by competing submission", zap.String("key", key))
		return nil, false
	}
	return func() {
		if unlockErr := o.LockerService.Unlock(ctx, key, lockValue); unlockErr != nil {
			o.Log.Warn("orchestrator.lockSlot unlock failed", zap.String("key", key), zap.Error(unlockErr))
		}
	}, true
}

// verifySlot re-checks the chosen instant right before the write. A definite
// "taken" answer is a conflict; a transport failure is logged and the
// submission proceeds, leaving the final word to the reservation service.
func (o *Orchestrator) verifySlot(ctx context.Context, startAt time.Time) (outcome *SubmitOutcome, conflicted bool, err error) {
	verification, verifyErr := o.AvailabilityClient.VerifySlot(ctx, o.staffID, startAt)
	if verifyErr != nil {
		o.Log.Warn("orchestrator.verifySlot verification unavailable, proceeding",
			zap.String("staff_id", o.staffID),
			zap.Time("start_at", startAt),
			zap.Error(verifyErr),
		)
		return nil, false, nil
	}
	if verification == nil || verification.Available {
		return nil, false, nil
	}

	message := constvars.ErrClientSlotNoLongerAvailable
	if mapped, ok := constvars.RejectionReasonMessages[verification.Reason]; ok {
		message = mapped
	}
	outcome, err = o.conflictOutcome(startAt, message)
	return outcome, true, err
}

// conflictOutcome runs the shared conflict aftermath: show the banner, clear
// the now-stale candidate slots, and ask the caller to refresh availability.
func (o *Orchestrator) conflictOutcome(startAt time.Time, message string) (*SubmitOutcome, error) {
	now := o.Clock.Now()
	o.Notifier.Show(&models.ConflictError{
		Message:   message,
		SlotStart: startAt,
		ShowUntil: now.Add(time.Duration(o.InternalConfig.App.ConflictNoticeSeconds) * time.Second),
	})

	o.mu.Lock()
	o.draft.SelectedSlots = nil
	refresh := o.onCalendarRefresh
	o.mu.Unlock()

	if refresh != nil {
		refresh()
	}

	return &SubmitOutcome{Status: outcomeStatusConflict, Message: message}, exceptions.ErrSlotConflict(nil)
}

// handleRejection maps upstream business rejections onto customer messages.
// Every mapped reason is joined into the explanation; unmapped codes collapse
// into one generic fallback. Conflict-class reasons additionally get the
// conflict aftermath because the instant was taken by a competing booking.
func (o *Orchestrator) handleRejection(startAt time.Time, reasons []string) (*SubmitOutcome, error) {
	var parts []string
	unmapped := false
	conflicted := false
	for _, reason := range reasons {
		if mapped, ok := constvars.RejectionReasonMessages[reason]; ok {
			parts = append(parts, mapped)
		} else {
			unmapped = true
		}
		if constvars.ConflictReasonCodes[reason] {
			conflicted = true
		}
	}
	if unmapped || len(parts) == 0 {
		parts = append(parts, constvars.RejectionReasonUnmappedFallbackLabel)
	}
	message := strings.Join(parts, ", ")

	if conflicted {
		outcome, _ := o.conflictOutcome(startAt, message)
		outcome.Status = outcomeStatusRejected
		return outcome, exceptions.ErrReservationRejected(message, reasons)
	}

	return &SubmitOutcome{Status: outcomeStatusRejected, Message: message},
		exceptions.ErrReservationRejected(message, reasons)
}

func (o *Orchestrator) buildPayload(draft Draft, startAt, endAt time.Time) *salon_dto.CreateReservationRequest {
	payload := &salon_dto.CreateReservationRequest{
		StaffID: o.staffID,
		Customer: salon_dto.CustomerContact{
			Name:  draft.Name,
			Phone: draft.Phone,
			Email: draft.Email,
		},
		DesiredStartAt: startAt.Format(time.RFC3339),
		DesiredEndAt:   endAt.Format(time.RFC3339),
		Notes:          o.composeNotes(draft),
		Channel:        constvars.ReservationChannelWeb,
	}

	duration := o.reservationDuration(draft)
	for _, slot := range draft.SelectedSlots {
		slotStart, err := civiltime.ParseInstant(slot.StartAt)
		if err != nil {
			continue
		}
		slotEnd := slotStart.Add(duration)
		if parsedEnd, endErr := civiltime.ParseInstant(slot.EndAt); endErr == nil {
			slotEnd = parsedEnd
		}
		payload.PreferredSlots = append(payload.PreferredSlots, salon_dto.PreferredSlot{
			DesiredStartAt: slotStart.Format(time.RFC3339),
			DesiredEndAt:   slotEnd.Format(time.RFC3339),
			StatusLabel:    string(slot.Status),
		})
	}
	return payload
}

// composeNotes folds the course choice and every candidate slot into the
// free-text notes so operators see the full request even on systems that
// ignore the structured preferred_slots field.
func (o *Orchestrator) composeNotes(draft Draft) string {
	var parts []string
	if draft.CourseLabel != "" {
		parts = append(parts, "Course: "+draft.CourseLabel)
	}
	for i, slot := range draft.SelectedSlots {
		slotStart, err := civiltime.ParseInstant(slot.StartAt)
		if err != nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("Candidate %d: %s %s (%s)",
			i+1,
			civiltime.ToCivilDate(slotStart),
			civiltime.ToCivilTime(slotStart),
			slot.Status,
		))
	}
	if draft.Notes != "" {
		parts = append(parts, draft.Notes)
	}
	return strings.Join(parts, "\n")
}

// finishConfirmed runs the success aftermath. Event publishing and profile
// persistence are best-effort; their failures are logged and never surfaced
// to the customer whose booking already went through.
func (o *Orchestrator) finishConfirmed(ctx context.Context, draft Draft, result *salon_dto.CreateReservationResult, startAt, endAt time.Time) {
	now := o.Clock.Now()

	o.mu.Lock()
	o.draft.Notes = ""
	o.draft.SelectedSlots = nil
	o.draft.DesiredStartAt = ""
	o.lastReservationID = result.ID
	o.lastSubmittedAt = now
	o.lastSummary = o.renderSummary(draft, result.ID, startAt, endAt)
	o.mu.Unlock()

	event := &contracts.ReservationEvent{
		ReservationID: result.ID,
		StaffID:       o.staffID,
		CustomerName:  draft.Name,
		StartAt:       startAt.Format(time.RFC3339),
		EndAt:         endAt.Format(time.RFC3339),
		Channel:       constvars.ReservationChannelWeb,
	}
	if err := o.EventPublisher.PublishReservationConfirmed(ctx, event); err != nil {
		o.Log.Error("orchestrator.finishConfirmed event publish failed",
			zap.String("reservation_id", result.ID),
			zap.Error(err),
		)
	}

	if draft.RememberContact {
		profile := &models.ContactProfile{
			Name:      draft.Name,
			Phone:     draft.Phone,
			Email:     draft.Email,
			UpdatedAt: now,
		}
		if err := o.ProfileRepository.Upsert(ctx, profile); err != nil {
			o.Log.Error("orchestrator.finishConfirmed profile upsert failed",
				zap.String("phone", draft.Phone),
				zap.Error(err),
			)
		}
	}
}

func (o *Orchestrator) renderSummary(draft Draft, reservationID string, startAt, endAt time.Time) string {
	lines := []string{
		"Reservation " + reservationID,
		"Name: " + draft.Name,
		"Phone: " + draft.Phone,
		fmt.Sprintf("Time: %s %s - %s",
			civiltime.ToCivilDate(startAt),
			civiltime.ToCivilTime(startAt),
			civiltime.ToCivilTime(endAt),
		),
	}
	if draft.CourseLabel != "" {
		lines = append(lines, "Course: "+draft.CourseLabel)
	}
	return strings.Join(lines, "\n")
}
