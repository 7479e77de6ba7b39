package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"riraku-service/internal/app/config"
	"riraku-service/internal/pkg/civiltime"
	"riraku-service/internal/pkg/salon_dto"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSlotClient struct {
	slots     []salon_dto.RawSlot
	err       error
	findCalls int
}

func (s *stubSlotClient) FindSlotsByStaffID(ctx context.Context, staffID string, from, to time.Time) ([]salon_dto.RawSlot, error) {
	s.findCalls++
	return s.slots, s.err
}

func (s *stubSlotClient) VerifySlot(ctx context.Context, staffID string, startAt time.Time) (*salon_dto.SlotVerification, error) {
	return &salon_dto.SlotVerification{Available: true}, nil
}

type memoryRedis struct {
	data     map[string]string
	setErr   error
	getErr   error
	setCalls int
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: make(map[string]string)}
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.setCalls++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = string(raw)
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	return m.data[key], nil
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, exists := m.data[key]; exists {
		return false, nil
	}
	return true, m.Set(ctx, key, value, exp)
}

func newUsecaseFixture(client *stubSlotClient, redis *memoryRedis) AvailabilityUsecase {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.AvailabilityCacheSeconds = 30

	now := time.Date(2024, 12, 17, 10, 0, 0, 0, civiltime.Zone)
	return NewAvailabilityUsecase(client, redis, civiltime.Fixed(now), internalConfig, zap.NewNop())
}

func TestWeekCalendar(t *testing.T) {
	t.Run("fetches, normalizes and caches on a cold read", func(t *testing.T) {
		client := &stubSlotClient{slots: []salon_dto.RawSlot{
			{Start: "2024-12-17T01:00:00Z", End: "2024-12-17T02:00:00Z", Status: "open"},
		}}
		redis := newMemoryRedis()
		uc := newUsecaseFixture(client, redis)

		cal, err := uc.WeekCalendar(context.Background(), "staff-1", "2024-12-17")
		require.NoError(t, err)
		require.NotNil(t, cal)
		require.Len(t, cal.Days, 1)
		assert.True(t, cal.Days[0].IsToday)
		assert.Equal(t, 1, redis.setCalls)
	})

	t.Run("serves a warm read from cache", func(t *testing.T) {
		client := &stubSlotClient{slots: []salon_dto.RawSlot{
			{Start: "2024-12-17T01:00:00Z", End: "2024-12-17T02:00:00Z", Status: "open"},
		}}
		redis := newMemoryRedis()
		uc := newUsecaseFixture(client, redis)

		_, err := uc.WeekCalendar(context.Background(), "staff-1", "2024-12-17")
		require.NoError(t, err)
		_, err = uc.WeekCalendar(context.Background(), "staff-1", "2024-12-17")
		require.NoError(t, err)

		assert.Equal(t, 1, client.findCalls)
	})

	t.Run("nil calendar for an unregistered staff member", func(t *testing.T) {
		client := &stubSlotClient{}
		uc := newUsecaseFixture(client, newMemoryRedis())

		cal, err := uc.WeekCalendar(context.Background(), "staff-unknown", "2024-12-17")
		require.NoError(t, err)
		assert.Nil(t, cal)
	})

	t.Run("a cache write failure does not break the calendar", func(t *testing.T) {
		client := &stubSlotClient{slots: []salon_dto.RawSlot{
			{Start: "2024-12-17T01:00:00Z", End: "2024-12-17T02:00:00Z", Status: "open"},
		}}
		redis := newMemoryRedis()
		redis.setErr = errors.New("redis down")
		uc := newUsecaseFixture(client, redis)

		cal, err := uc.WeekCalendar(context.Background(), "staff-1", "2024-12-17")
		require.NoError(t, err)
		assert.NotNil(t, cal)
	})

	t.Run("a cache read failure falls through to the client", func(t *testing.T) {
		client := &stubSlotClient{slots: []salon_dto.RawSlot{
			{Start: "2024-12-17T01:00:00Z", End: "2024-12-17T02:00:00Z", Status: "open"},
		}}
		redis := newMemoryRedis()
		redis.getErr = errors.New("redis down")
		uc := newUsecaseFixture(client, redis)

		cal, err := uc.WeekCalendar(context.Background(), "staff-1", "2024-12-17")
		require.NoError(t, err)
		assert.NotNil(t, cal)
		assert.Equal(t, 1, client.findCalls)
	})

	t.Run("a client failure surfaces", func(t *testing.T) {
		client := &stubSlotClient{err: errors.New("upstream down")}
		uc := newUsecaseFixture(client, newMemoryRedis())

		_, err := uc.WeekCalendar(context.Background(), "staff-1", "2024-12-17")
		assert.Error(t, err)
	})

	t.Run("rejects an invalid week start", func(t *testing.T) {
		uc := newUsecaseFixture(&stubSlotClient{}, newMemoryRedis())

		_, err := uc.WeekCalendar(context.Background(), "staff-1", "17-12-2024")
		assert.Error(t, err)
	})

	t.Run("invalidation forces a refetch", func(t *testing.T) {
		client := &stubSlotClient{slots: []salon_dto.RawSlot{
			{Start: "2024-12-17T01:00:00Z", End: "2024-12-17T02:00:00Z", Status: "open"},
		}}
		redis := newMemoryRedis()
		uc := newUsecaseFixture(client, redis)

		_, err := uc.WeekCalendar(context.Background(), "staff-1", "2024-12-17")
		require.NoError(t, err)

		uc.InvalidateWeek(context.Background(), "staff-1", "2024-12-17")

		_, err = uc.WeekCalendar(context.Background(), "staff-1", "2024-12-17")
		require.NoError(t, err)
		assert.Equal(t, 2, client.findCalls)
	})
}
