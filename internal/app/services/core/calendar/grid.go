package calendar

import (
	"fmt"
	"riraku-service/internal/app/models"
	"riraku-service/internal/pkg/civiltime"
	"riraku-service/internal/pkg/constvars"
	"time"
)

// CellState classifies one (date, time) cell of the week grid.
type CellState string

const (
	// CellAvailable holds an open or tentative slot and can be toggled.
	CellAvailable CellState = "available"
	// CellUnavailable holds a blocked slot; terminal and non-interactive.
	CellUnavailable CellState = "unavailable"
	// CellNotApplicable has no slot at all (outside business hours or no
	// schedule posted); inert for interaction and assistive technology.
	CellNotApplicable CellState = "not_applicable"
)

// SourceType selects the grid variant. One parameterized grid replaces the
// drifting near-duplicate copies the storefront used to maintain.
type SourceType string

const (
	SourceLive         SourceType = "live"
	SourceFallback     SourceType = "fallback"
	SourceUnregistered SourceType = "unregistered"
)

type Layout string

const (
	LayoutCompact  Layout = "compact"
	LayoutExpanded Layout = "expanded"
)

type Config struct {
	Timeline     []string
	MaxSelection int
	Layout       Layout
	Source       SourceType
}

// Grid is the stateful week view: seven civil days against a fixed
// time-of-day timeline, with a bounded multi-slot selection.
type Grid struct {
	days     []string
	timeline []string
	lookup   map[string]map[string]models.NormalizedSlot
	selected []models.SelectedSlot
	cfg      Config
}

// NewGrid builds a grid for the week starting at weekStart. A nil or
// structurally empty calendar yields the unregistered variant: every cell is
// NotApplicable and the storefront offers a plain reservation request instead.
func NewGrid(cal *models.AvailabilityCalendar, weekStart string, cfg Config) (*Grid, error) {
	days, err := civiltime.WeekRange(weekStart)
	if err != nil {
		return nil, err
	}
	if cfg.MaxSelection <= 0 {
		cfg.MaxSelection = constvars.DefaultMaxSelection
	}
	if cfg.Layout == "" {
		cfg.Layout = LayoutExpanded
	}

	grid := &Grid{
		days:     days,
		timeline: cfg.Timeline,
		lookup:   make(map[string]map[string]models.NormalizedSlot),
		cfg:      cfg,
	}

	if cal == nil || len(cal.Days) == 0 {
		grid.cfg.Source = SourceUnregistered
		return grid, nil
	}
	if grid.cfg.Source == "" {
		grid.cfg.Source = SourceLive
	}

	inWeek := make(map[string]bool, len(days))
	for _, day := range days {
		inWeek[day] = true
	}
	for _, day := range cal.Days {
		if !inWeek[day.Date] {
			continue
		}
		byTime := make(map[string]models.NormalizedSlot, len(day.Slots))
		for _, slot := range day.Slots {
			byTime[slot.TimeKey] = slot
		}
		grid.lookup[day.Date] = byTime
	}

	return grid, nil
}

// Unregistered reports whether no availability exists for this staff member.
func (g *Grid) Unregistered() bool {
	return g.cfg.Source == SourceUnregistered
}

func (g *Grid) Source() SourceType {
	return g.cfg.Source
}

func (g *Grid) Layout() Layout {
	return g.cfg.Layout
}

func (g *Grid) Days() []string {
	return g.days
}

func (g *Grid) Timeline() []string {
	return g.timeline
}

// Slot returns the slot at a cell, if any.
func (g *Grid) Slot(date, timeKey string) (models.NormalizedSlot, bool) {
	byTime, ok := g.lookup[date]
	if !ok {
		return models.NormalizedSlot{}, false
	}
	slot, ok := byTime[timeKey]
	return slot, ok
}

// CellState classifies a cell. NotApplicable and Unavailable are terminal.
func (g *Grid) CellState(date, timeKey string) CellState {
	slot, ok := g.Slot(date, timeKey)
	if !ok {
		return CellNotApplicable
	}
	if slot.Status.Bookable() {
		return CellAvailable
	}
	return CellUnavailable
}

// Toggle flips the selection of an available cell. It returns true when the
// selection changed. Adding beyond the cap is rejected without touching the
// existing selection; deselecting is always allowed.
func (g *Grid) Toggle(date, timeKey string) (bool, error) {
	slot, ok := g.Slot(date, timeKey)
	if !ok {
		return false, fmt.Errorf("no slot at %s %s", date, timeKey)
	}
	if !slot.Status.Bookable() {
		return false, fmt.Errorf("slot at %s %s is not bookable", date, timeKey)
	}

	if idx := g.indexOfSelected(slot.Start); idx >= 0 {
		g.selected = append(g.selected[:idx], g.selected[idx+1:]...)
		return true, nil
	}

	if len(g.selected) >= g.cfg.MaxSelection {
		return false, nil
	}

	g.selected = append(g.selected, models.SelectedSlot{
		StartAt: slot.Start.Format(time.RFC3339),
		EndAt:   slot.End.Format(time.RFC3339),
		Date:    date,
		Status:  slot.Status,
	})
	return true, nil
}

// IsSelected reports whether the cell's slot is in the current selection.
func (g *Grid) IsSelected(date, timeKey string) bool {
	slot, ok := g.Slot(date, timeKey)
	if !ok {
		return false
	}
	return g.indexOfSelected(slot.Start) >= 0
}

// Selected returns a copy of the current selection in pick order.
func (g *Grid) Selected() []models.SelectedSlot {
	out := make([]models.SelectedSlot, len(g.selected))
	copy(out, g.selected)
	return out
}

func (g *Grid) SelectionCount() int {
	return len(g.selected)
}

// ClearSelection drops every selected slot, e.g. after a conflict forced a
// calendar refresh.
func (g *Grid) ClearSelection() {
	g.selected = nil
}

// RemoveSelection drops the selected slot whose start equals the given
// instant, if present.
func (g *Grid) RemoveSelection(startAt time.Time) {
	if idx := g.indexOfSelected(startAt); idx >= 0 {
		g.selected = append(g.selected[:idx], g.selected[idx+1:]...)
	}
}

// indexOfSelected matches by absolute instant, never by string identity: the
// same instant may arrive with different textual encodings (offset notation,
// field casing) from different sources, and a string compare would fail to
// mark such a slot as selected.
func (g *Grid) indexOfSelected(startAt time.Time) int {
	for i, sel := range g.selected {
		selStart, err := civiltime.ParseInstant(sel.StartAt)
		if err != nil {
			continue
		}
		if selStart.Equal(startAt) {
			return i
		}
	}
	return -1
}
