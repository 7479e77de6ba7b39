package civiltime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCivilDate(t *testing.T) {
	t.Run("Instant Inside Civil Day", func(t *testing.T) {
		instant, err := time.Parse(time.RFC3339, "2024-12-17T10:00:00+09:00")
		require.NoError(t, err)

		assert.Equal(t, "2024-12-17", ToCivilDate(instant))
	})

	t.Run("One Minute Before Civil Midnight", func(t *testing.T) {
		// 23:59 JST on the 17th is 14:59 UTC on the 17th.
		instant, err := time.Parse(time.RFC3339, "2024-12-17T14:59:00Z")
		require.NoError(t, err)

		assert.Equal(t, "2024-12-17", ToCivilDate(instant))
	})

	t.Run("Exactly Civil Midnight", func(t *testing.T) {
		// 00:00 JST on the 18th is 15:00 UTC on the 17th.
		instant, err := time.Parse(time.RFC3339, "2024-12-17T15:00:00Z")
		require.NoError(t, err)

		assert.Equal(t, "2024-12-18", ToCivilDate(instant))
	})

	t.Run("One Minute After Civil Midnight", func(t *testing.T) {
		instant, err := time.Parse(time.RFC3339, "2024-12-17T15:01:00Z")
		require.NoError(t, err)

		assert.Equal(t, "2024-12-18", ToCivilDate(instant))
	})
}

func TestToCivilTime(t *testing.T) {
	instant, err := time.Parse(time.RFC3339, "2024-12-17T15:30:00Z")
	require.NoError(t, err)

	assert.Equal(t, "00:30", ToCivilTime(instant))
}

func TestCivilMidnight(t *testing.T) {
	t.Run("Valid Date", func(t *testing.T) {
		midnight, err := CivilMidnight("2024-12-17")
		require.NoError(t, err)

		assert.Equal(t, "2024-12-17", ToCivilDate(midnight))
		assert.Equal(t, "00:00", ToCivilTime(midnight))
		// Midnight JST is 15:00 UTC the previous day.
		assert.Equal(t, "2024-12-16T15:00:00Z", midnight.UTC().Format(time.RFC3339))
	})

	t.Run("Malformed Date", func(t *testing.T) {
		_, err := CivilMidnight("17-12-2024")
		assert.Error(t, err)
	})
}

func TestAddCivilDays(t *testing.T) {
	t.Run("Month Rollover", func(t *testing.T) {
		got, err := AddCivilDays("2024-11-30", 1)
		require.NoError(t, err)
		assert.Equal(t, "2024-12-01", got)
	})

	t.Run("Year Rollover", func(t *testing.T) {
		got, err := AddCivilDays("2024-12-31", 1)
		require.NoError(t, err)
		assert.Equal(t, "2025-01-01", got)
	})

	t.Run("Leap Day", func(t *testing.T) {
		got, err := AddCivilDays("2024-02-28", 1)
		require.NoError(t, err)
		assert.Equal(t, "2024-02-29", got)
	})

	t.Run("Negative Offset", func(t *testing.T) {
		got, err := AddCivilDays("2025-01-01", -1)
		require.NoError(t, err)
		assert.Equal(t, "2024-12-31", got)
	})
}

func TestWeekRange(t *testing.T) {
	t.Run("Spans Year Boundary", func(t *testing.T) {
		days, err := WeekRange("2024-12-29")
		require.NoError(t, err)

		expected := []string{
			"2024-12-29", "2024-12-30", "2024-12-31",
			"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04",
		}
		assert.Equal(t, expected, days)
	})

	t.Run("Spans Leap Day", func(t *testing.T) {
		days, err := WeekRange("2024-02-26")
		require.NoError(t, err)

		require.Len(t, days, 7)
		assert.Equal(t, "2024-02-29", days[3])
		assert.Equal(t, "2024-03-03", days[6])
	})

	t.Run("Gap Free", func(t *testing.T) {
		days, err := WeekRange("2024-06-10")
		require.NoError(t, err)

		for i := 1; i < len(days); i++ {
			next, err := AddCivilDays(days[i-1], 1)
			require.NoError(t, err)
			assert.Equal(t, next, days[i])
		}
	})
}

func TestClock(t *testing.T) {
	t.Run("Fixed Clock Pins Now", func(t *testing.T) {
		instant, err := time.Parse(time.RFC3339, "2024-12-17T10:00:00+09:00")
		require.NoError(t, err)

		clock := Fixed(instant)
		assert.True(t, clock.Now().Equal(instant))
		assert.True(t, clock.Now().Equal(instant), "fixed clock should not advance")
	})

	t.Run("Independent Fixed Clocks", func(t *testing.T) {
		a := Fixed(time.Date(2024, 1, 1, 0, 0, 0, 0, Zone))
		b := Fixed(time.Date(2025, 1, 1, 0, 0, 0, 0, Zone))

		assert.False(t, a.Now().Equal(b.Now()), "clocks must not share state")
	})
}
