package availability

import (
	"testing"
	"time"

	"riraku-service/internal/app/models"
	"riraku-service/internal/pkg/salon_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	t.Run("maps the open vocabulary", func(t *testing.T) {
		assert.Equal(t, models.SlotStatusOpen, NormalizeStatus("open"))
		assert.Equal(t, models.SlotStatusOpen, NormalizeStatus("available"))
		assert.Equal(t, models.SlotStatusOpen, NormalizeStatus("ok"))
	})

	t.Run("maps the tentative vocabulary", func(t *testing.T) {
		assert.Equal(t, models.SlotStatusTentative, NormalizeStatus("tentative"))
		assert.Equal(t, models.SlotStatusTentative, NormalizeStatus("maybe"))
	})

	t.Run("maps the blocked vocabulary", func(t *testing.T) {
		assert.Equal(t, models.SlotStatusBlocked, NormalizeStatus("blocked"))
		assert.Equal(t, models.SlotStatusBlocked, NormalizeStatus("busy"))
		assert.Equal(t, models.SlotStatusBlocked, NormalizeStatus("unavailable"))
	})

	t.Run("is case and whitespace insensitive", func(t *testing.T) {
		assert.Equal(t, models.SlotStatusOpen, NormalizeStatus(" OK "))
		assert.Equal(t, models.SlotStatusBlocked, NormalizeStatus("Busy"))
	})

	t.Run("unknown values fall open", func(t *testing.T) {
		assert.Equal(t, models.SlotStatusOpen, NormalizeStatus("vacation???"))
		assert.Equal(t, models.SlotStatusOpen, NormalizeStatus(""))
	})
}

func TestNormalize(t *testing.T) {
	t.Run("nil for an empty slot list", func(t *testing.T) {
		assert.Nil(t, Normalize(nil, "2024-12-17"))
		assert.Nil(t, Normalize([]salon_dto.RawSlot{}, "2024-12-17"))
	})

	t.Run("nil when every slot is malformed", func(t *testing.T) {
		raw := []salon_dto.RawSlot{
			{Start: "not-a-time", End: "2024-12-17T02:00:00Z", Status: "open"},
			{Start: "2024-12-17T01:00:00Z", End: "garbage", Status: "open"},
		}
		assert.Nil(t, Normalize(raw, "2024-12-17"))
	})

	t.Run("drops malformed slots one by one", func(t *testing.T) {
		raw := []salon_dto.RawSlot{
			{Start: "broken", End: "2024-12-17T02:00:00Z", Status: "open"},
			{Start: "2024-12-17T01:00:00Z", End: "2024-12-17T02:00:00Z", Status: "open"},
		}
		cal := Normalize(raw, "2024-12-17")
		require.NotNil(t, cal)
		require.Len(t, cal.Days, 1)
		assert.Len(t, cal.Days[0].Slots, 1)
	})

	t.Run("deduplicates identical intervals regardless of status casing", func(t *testing.T) {
		raw := []salon_dto.RawSlot{
			{Start: "2024-12-17T01:00:00Z", End: "2024-12-17T02:00:00Z", Status: "ok"},
			{Start: "2024-12-17T01:00:00Z", End: "2024-12-17T02:00:00Z", Status: "OK"},
		}
		cal := Normalize(raw, "2024-12-17")
		require.NotNil(t, cal)
		require.Len(t, cal.Days, 1)
		require.Len(t, cal.Days[0].Slots, 1)
		assert.Equal(t, models.SlotStatusOpen, cal.Days[0].Slots[0].Status)
	})

	t.Run("groups by civil date in the fixed timezone", func(t *testing.T) {
		// 14:59 UTC is still the 17th in JST; 15:00 UTC is the 18th.
		raw := []salon_dto.RawSlot{
			{Start: "2024-12-17T14:59:00Z", End: "2024-12-17T15:59:00Z", Status: "open"},
			{Start: "2024-12-17T15:00:00Z", End: "2024-12-17T16:00:00Z", Status: "open"},
		}
		cal := Normalize(raw, "2024-12-17")
		require.NotNil(t, cal)
		require.Len(t, cal.Days, 2)
		assert.Equal(t, "2024-12-17", cal.Days[0].Date)
		assert.Equal(t, "2024-12-18", cal.Days[1].Date)
		assert.Equal(t, "23:59", cal.Days[0].Slots[0].TimeKey)
		assert.Equal(t, "00:00", cal.Days[1].Slots[0].TimeKey)
	})

	t.Run("one slot per time key within a day", func(t *testing.T) {
		// Same wall-clock start with different ends: first by start order wins.
		raw := []salon_dto.RawSlot{
			{Start: "2024-12-17T01:00:00Z", End: "2024-12-17T02:00:00Z", Status: "open"},
			{Start: "2024-12-17T01:00:00Z", End: "2024-12-17T01:30:00Z", Status: "tentative"},
		}
		cal := Normalize(raw, "2024-12-17")
		require.NotNil(t, cal)
		require.Len(t, cal.Days, 1)
		assert.Len(t, cal.Days[0].Slots, 1)
	})

	t.Run("days and slots come back sorted", func(t *testing.T) {
		raw := []salon_dto.RawSlot{
			{Start: "2024-12-18T03:00:00Z", End: "2024-12-18T04:00:00Z", Status: "open"},
			{Start: "2024-12-17T05:00:00Z", End: "2024-12-17T06:00:00Z", Status: "open"},
			{Start: "2024-12-17T01:00:00Z", End: "2024-12-17T02:00:00Z", Status: "open"},
		}
		cal := Normalize(raw, "2024-12-17")
		require.NotNil(t, cal)
		require.Len(t, cal.Days, 2)
		assert.Equal(t, "2024-12-17", cal.Days[0].Date)
		require.Len(t, cal.Days[0].Slots, 2)
		assert.True(t, cal.Days[0].Slots[0].Start.Before(cal.Days[0].Slots[1].Start))
	})

	t.Run("tags today", func(t *testing.T) {
		raw := []salon_dto.RawSlot{
			{Start: "2024-12-17T01:00:00Z", End: "2024-12-17T02:00:00Z", Status: "open"},
			{Start: "2024-12-18T01:00:00Z", End: "2024-12-18T02:00:00Z", Status: "open"},
		}
		cal := Normalize(raw, "2024-12-18")
		require.NotNil(t, cal)
		require.Len(t, cal.Days, 2)
		assert.False(t, cal.Days[0].IsToday)
		assert.True(t, cal.Days[1].IsToday)
	})

	t.Run("is idempotent on already-normalized input", func(t *testing.T) {
		raw := []salon_dto.RawSlot{
			{Start: "2024-12-17T10:00:00+09:00", End: "2024-12-17T11:00:00+09:00", Status: "ok"},
			// Same interval as above in a different textual encoding.
			{Start: "2024-12-17T01:00:00Z", End: "2024-12-17T02:00:00Z", Status: "OK"},
			{Start: "2024-12-17T03:00:00Z", End: "2024-12-17T04:00:00Z", Status: "busy"},
			{Start: "2024-12-18T01:00:00Z", End: "2024-12-18T02:00:00Z", Status: "maybe"},
		}
		first := Normalize(raw, "2024-12-17")
		require.NotNil(t, first)

		var reencoded []salon_dto.RawSlot
		for _, day := range first.Days {
			for _, slot := range day.Slots {
				reencoded = append(reencoded, salon_dto.RawSlot{
					Start:  slot.Start.Format(time.RFC3339),
					End:    slot.End.Format(time.RFC3339),
					Status: string(slot.Status),
				})
			}
		}

		second := Normalize(reencoded, "2024-12-17")
		require.NotNil(t, second)
		require.Len(t, second.Days, len(first.Days))
		for i, day := range first.Days {
			got := second.Days[i]
			assert.Equal(t, day.Date, got.Date)
			assert.Equal(t, day.IsToday, got.IsToday)
			require.Len(t, got.Slots, len(day.Slots))
			for j, slot := range day.Slots {
				assert.True(t, slot.Start.Equal(got.Slots[j].Start))
				assert.True(t, slot.End.Equal(got.Slots[j].End))
				assert.Equal(t, slot.Status, got.Slots[j].Status)
				assert.Equal(t, slot.TimeKey, got.Slots[j].TimeKey)
			}
		}
	})

	t.Run("preserves blocked days instead of returning nil", func(t *testing.T) {
		raw := []salon_dto.RawSlot{
			{Start: "2024-12-17T01:00:00Z", End: "2024-12-17T02:00:00Z", Status: "busy"},
		}
		cal := Normalize(raw, "2024-12-17")
		require.NotNil(t, cal)
		assert.Equal(t, models.SlotStatusBlocked, cal.Days[0].Slots[0].Status)
	})
}
