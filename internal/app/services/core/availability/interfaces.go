package availability

import (
	"context"
	"riraku-service/internal/app/models"
)

type AvailabilityUsecase interface {
	// WeekCalendar returns the normalized calendar covering the week that
	// starts at weekStart. A nil calendar with a nil error means the staff
	// member has not registered any availability.
	WeekCalendar(ctx context.Context, staffID, weekStart string) (*models.AvailabilityCalendar, error)

	// InvalidateWeek drops the cached snapshot so the next read refetches,
	// used after a submission conflict proves the snapshot stale.
	InvalidateWeek(ctx context.Context, staffID, weekStart string)
}
