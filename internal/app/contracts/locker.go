package contracts

import (
	"context"
	"time"
)

// LockerService hands out short-lived distributed locks so two customers
// submitting the same instant serialize on the verify-then-submit window.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
