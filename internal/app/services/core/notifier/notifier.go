package notifier

import (
	"riraku-service/internal/app/models"
	"riraku-service/internal/pkg/civiltime"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ConflictNotifier holds at most one ConflictError and self-expires it at
// ShowUntil. A conflict whose window already passed is never rendered.
type ConflictNotifier struct {
	mu         sync.Mutex
	clock      civiltime.Clock
	Log        *zap.Logger
	current    *models.ConflictError
	timer      *time.Timer
	generation uint64
}

func NewConflictNotifier(clock civiltime.Clock, logger *zap.Logger) *ConflictNotifier {
	return &ConflictNotifier{
		clock: clock,
		Log:   logger,
	}
}

// Show replaces the displayed conflict. The previous auto-dismiss timer is
// cancelled first so a stale callback can never dismiss this newer error.
func (n *ConflictNotifier) Show(conflict *models.ConflictError) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.cancelTimerLocked()
	n.generation++

	remaining := conflict.ShowUntil.Sub(n.clock.Now())
	if remaining <= 0 {
		// Already expired: dismiss synchronously, no flash.
		n.current = nil
		return
	}

	n.current = conflict
	generation := n.generation
	n.timer = time.AfterFunc(remaining, func() {
		n.dismissGeneration(generation)
	})

	n.Log.Info("conflictNotifier.Show displaying conflict",
		zap.Time("slot_start", conflict.SlotStart),
		zap.Duration("show_for", remaining),
	)
}

// Current returns the conflict being displayed, or nil.
func (n *ConflictNotifier) Current() *models.ConflictError {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current != nil && !n.clock.Now().Before(n.current.ShowUntil) {
		// The timer has not fired yet but the window is over.
		return nil
	}
	return n.current
}

// Dismiss clears the conflict on explicit user action.
func (n *ConflictNotifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.cancelTimerLocked()
	n.generation++
	n.current = nil
}

// Close cancels the pending timer on teardown so no callback mutates state
// after disposal.
func (n *ConflictNotifier) Close() {
	n.Dismiss()
}

func (n *ConflictNotifier) dismissGeneration(generation uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.generation != generation {
		// A newer conflict replaced this one; leave it alone.
		return
	}
	n.current = nil
	n.timer = nil
}

func (n *ConflictNotifier) cancelTimerLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
