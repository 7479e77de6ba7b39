package calendar

import (
	"testing"
	"time"

	"riraku-service/internal/app/models"
	"riraku-service/internal/pkg/civiltime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotAt(t *testing.T, start string, status models.SlotStatus) models.NormalizedSlot {
	t.Helper()
	startAt, err := civiltime.ParseInstant(start)
	require.NoError(t, err)
	return models.NormalizedSlot{
		Start:   startAt,
		End:     startAt.Add(time.Hour),
		Status:  status,
		TimeKey: civiltime.ToCivilTime(startAt),
	}
}

func weekCalendar(t *testing.T) *models.AvailabilityCalendar {
	t.Helper()
	return &models.AvailabilityCalendar{
		Days: []models.NormalizedDay{
			{
				Date: "2024-12-16",
				Slots: []models.NormalizedSlot{
					slotAt(t, "2024-12-16T01:00:00Z", models.SlotStatusOpen),      // 10:00 JST
					slotAt(t, "2024-12-16T02:00:00Z", models.SlotStatusTentative), // 11:00 JST
					slotAt(t, "2024-12-16T03:00:00Z", models.SlotStatusBlocked),   // 12:00 JST
				},
			},
			{
				Date: "2024-12-17",
				Slots: []models.NormalizedSlot{
					slotAt(t, "2024-12-17T01:00:00Z", models.SlotStatusOpen),
					slotAt(t, "2024-12-17T02:00:00Z", models.SlotStatusOpen),
				},
			},
		},
	}
}

func testConfig() Config {
	return Config{
		Timeline:     BuildTimeline(10, 20, 30),
		MaxSelection: 3,
	}
}

func TestNewGrid(t *testing.T) {
	t.Run("nil calendar yields the unregistered variant", func(t *testing.T) {
		grid, err := NewGrid(nil, "2024-12-16", testConfig())
		require.NoError(t, err)
		assert.True(t, grid.Unregistered())
		assert.Equal(t, SourceUnregistered, grid.Source())
		assert.Equal(t, CellNotApplicable, grid.CellState("2024-12-16", "10:00"))
	})

	t.Run("empty calendar yields the unregistered variant", func(t *testing.T) {
		grid, err := NewGrid(&models.AvailabilityCalendar{}, "2024-12-16", testConfig())
		require.NoError(t, err)
		assert.True(t, grid.Unregistered())
	})

	t.Run("populated calendar defaults to the live variant", func(t *testing.T) {
		grid, err := NewGrid(weekCalendar(t), "2024-12-16", testConfig())
		require.NoError(t, err)
		assert.False(t, grid.Unregistered())
		assert.Equal(t, SourceLive, grid.Source())
		assert.Equal(t, LayoutExpanded, grid.Layout())
		assert.Len(t, grid.Days(), 7)
	})

	t.Run("configured source survives", func(t *testing.T) {
		cfg := testConfig()
		cfg.Source = SourceFallback
		grid, err := NewGrid(weekCalendar(t), "2024-12-16", cfg)
		require.NoError(t, err)
		assert.Equal(t, SourceFallback, grid.Source())
	})

	t.Run("invalid week start is rejected", func(t *testing.T) {
		_, err := NewGrid(weekCalendar(t), "12/16/2024", testConfig())
		assert.Error(t, err)
	})

	t.Run("days outside the week are excluded", func(t *testing.T) {
		grid, err := NewGrid(weekCalendar(t), "2024-12-18", testConfig())
		require.NoError(t, err)
		assert.Equal(t, CellNotApplicable, grid.CellState("2024-12-16", "10:00"))
	})
}

func TestGridCellState(t *testing.T) {
	grid, err := NewGrid(weekCalendar(t), "2024-12-16", testConfig())
	require.NoError(t, err)

	assert.Equal(t, CellAvailable, grid.CellState("2024-12-16", "10:00"))
	assert.Equal(t, CellAvailable, grid.CellState("2024-12-16", "11:00"), "tentative is selectable")
	assert.Equal(t, CellUnavailable, grid.CellState("2024-12-16", "12:00"))
	assert.Equal(t, CellNotApplicable, grid.CellState("2024-12-16", "19:30"))
}

func TestGridToggle(t *testing.T) {
	t.Run("select then deselect", func(t *testing.T) {
		grid, err := NewGrid(weekCalendar(t), "2024-12-16", testConfig())
		require.NoError(t, err)

		changed, err := grid.Toggle("2024-12-16", "10:00")
		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, grid.IsSelected("2024-12-16", "10:00"))
		assert.Equal(t, 1, grid.SelectionCount())

		changed, err = grid.Toggle("2024-12-16", "10:00")
		require.NoError(t, err)
		assert.True(t, changed)
		assert.False(t, grid.IsSelected("2024-12-16", "10:00"))
		assert.Equal(t, 0, grid.SelectionCount())
	})

	t.Run("cap rejects additions but never deselections", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxSelection = 2
		grid, err := NewGrid(weekCalendar(t), "2024-12-16", cfg)
		require.NoError(t, err)

		for _, cell := range [][2]string{{"2024-12-16", "10:00"}, {"2024-12-16", "11:00"}} {
			changed, err := grid.Toggle(cell[0], cell[1])
			require.NoError(t, err)
			require.True(t, changed)
		}

		changed, err := grid.Toggle("2024-12-17", "10:00")
		require.NoError(t, err)
		assert.False(t, changed, "over-cap addition must be a silent no-op")
		assert.Equal(t, 2, grid.SelectionCount())

		changed, err = grid.Toggle("2024-12-16", "10:00")
		require.NoError(t, err)
		assert.True(t, changed, "deselection is always allowed at the cap")
		assert.Equal(t, 1, grid.SelectionCount())
	})

	t.Run("blocked and empty cells cannot be toggled", func(t *testing.T) {
		grid, err := NewGrid(weekCalendar(t), "2024-12-16", testConfig())
		require.NoError(t, err)

		_, err = grid.Toggle("2024-12-16", "12:00")
		assert.Error(t, err)
		_, err = grid.Toggle("2024-12-16", "19:30")
		assert.Error(t, err)
	})
}

func TestGridSelectionMatching(t *testing.T) {
	t.Run("matches by instant across textual encodings", func(t *testing.T) {
		grid, err := NewGrid(weekCalendar(t), "2024-12-16", testConfig())
		require.NoError(t, err)

		_, err = grid.Toggle("2024-12-16", "10:00")
		require.NoError(t, err)

		// 2024-12-16T01:00:00Z and 2024-12-16T10:00:00+09:00 are the same
		// instant in different notations.
		sameInstant, err := civiltime.ParseInstant("2024-12-16T10:00:00+09:00")
		require.NoError(t, err)

		grid.RemoveSelection(sameInstant)
		assert.Equal(t, 0, grid.SelectionCount())
	})

	t.Run("selected copies carry RFC3339 instants", func(t *testing.T) {
		grid, err := NewGrid(weekCalendar(t), "2024-12-16", testConfig())
		require.NoError(t, err)

		_, err = grid.Toggle("2024-12-16", "11:00")
		require.NoError(t, err)

		selected := grid.Selected()
		require.Len(t, selected, 1)
		assert.Equal(t, "2024-12-16", selected[0].Date)
		assert.Equal(t, models.SlotStatusTentative, selected[0].Status)

		parsed, err := civiltime.ParseInstant(selected[0].StartAt)
		require.NoError(t, err)
		assert.Equal(t, "11:00", civiltime.ToCivilTime(parsed))
	})

	t.Run("clear selection drops everything", func(t *testing.T) {
		grid, err := NewGrid(weekCalendar(t), "2024-12-16", testConfig())
		require.NoError(t, err)

		_, err = grid.Toggle("2024-12-16", "10:00")
		require.NoError(t, err)
		_, err = grid.Toggle("2024-12-17", "10:00")
		require.NoError(t, err)

		grid.ClearSelection()
		assert.Equal(t, 0, grid.SelectionCount())
	})
}
