package availability

import (
	"context"
	"fmt"
	"riraku-service/internal/app/config"
	"riraku-service/internal/app/contracts"
	"riraku-service/internal/app/models"
	"riraku-service/internal/pkg/civiltime"
	"riraku-service/internal/pkg/constvars"
	"riraku-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type availabilityUsecase struct {
	client          contracts.AvailabilityClient
	redisRepository contracts.RedisRepository
	clock           civiltime.Clock
	internalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAvailabilityUsecase(
	client contracts.AvailabilityClient,
	redisRepository contracts.RedisRepository,
	clock civiltime.Clock,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AvailabilityUsecase {
	return &availabilityUsecase{
		client:          client,
		redisRepository: redisRepository,
		clock:           clock,
		internalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *availabilityUsecase) WeekCalendar(ctx context.Context, staffID, weekStart string) (*models.AvailabilityCalendar, error) {
	from, err := civiltime.CivilMidnight(weekStart)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	to := from.AddDate(0, 0, 7)
	today := civiltime.ToCivilDate(uc.clock.Now())

	cacheKey := fmt.Sprintf("availability:%s:%s", staffID, weekStart)
	if cached, err := uc.redisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		var calendar models.AvailabilityCalendar
		if err := json.Unmarshal([]byte(cached), &calendar); err == nil {
			return retagToday(&calendar, today), nil
		}
	}

	rawSlots, err := uc.client.FindSlotsByStaffID(ctx, staffID, from, to)
	if err != nil {
		uc.Log.Error("availabilityUsecase.WeekCalendar error fetching slots",
			zap.String(constvars.LoggingStaffIDKey, staffID),
			zap.String(constvars.LoggingWeekStartKey, weekStart),
			zap.Error(err),
		)
		return nil, err
	}

	calendar := Normalize(rawSlots, today)
	if calendar == nil {
		uc.Log.Info("availabilityUsecase.WeekCalendar no availability registered",
			zap.String(constvars.LoggingStaffIDKey, staffID),
		)
		return nil, nil
	}

	ttl := time.Duration(uc.internalConfig.App.AvailabilityCacheSeconds) * time.Second
	if err := uc.redisRepository.Set(ctx, cacheKey, calendar, ttl); err != nil {
		// Cache failures must never break the calendar.
		uc.Log.Warn("availabilityUsecase.WeekCalendar cache write failed",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}

	uc.Log.Info("availabilityUsecase.WeekCalendar succeeded",
		zap.String(constvars.LoggingStaffIDKey, staffID),
		zap.Int(constvars.LoggingDayCountKey, len(calendar.Days)),
	)
	return calendar, nil
}

func (uc *availabilityUsecase) InvalidateWeek(ctx context.Context, staffID, weekStart string) {
	cacheKey := fmt.Sprintf("availability:%s:%s", staffID, weekStart)
	if err := uc.redisRepository.Delete(ctx, cacheKey); err != nil {
		uc.Log.Warn("availabilityUsecase.InvalidateWeek cache delete failed",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}
}

// retagToday recomputes IsToday on a cached calendar, since "today" may have
// rolled over while the snapshot was still fresh.
func retagToday(calendar *models.AvailabilityCalendar, today string) *models.AvailabilityCalendar {
	for i := range calendar.Days {
		calendar.Days[i].IsToday = calendar.Days[i].Date == today
	}
	return calendar
}
