package models

import "time"

// SlotStatus is the canonical, restricted availability status. Every raw
// vocabulary value collapses into exactly one of these three.
type SlotStatus string

const (
	SlotStatusOpen      SlotStatus = "open"
	SlotStatusTentative SlotStatus = "tentative"
	SlotStatusBlocked   SlotStatus = "blocked"
)

// Bookable reports whether a slot with this status may be selected.
func (s SlotStatus) Bookable() bool {
	return s == SlotStatusOpen || s == SlotStatusTentative
}

// NormalizedSlot is one canonical bookable interval. TimeKey is the HH:mm
// wall-clock label of Start in the fixed civil timezone.
type NormalizedSlot struct {
	Start   time.Time  `json:"start"`
	End     time.Time  `json:"end"`
	Status  SlotStatus `json:"status"`
	TimeKey string     `json:"time_key"`
}

// NormalizedDay groups a civil date's slots. Within a day no two slots share
// a TimeKey; slots are sorted ascending by start.
type NormalizedDay struct {
	Date    string           `json:"date"`
	IsToday bool             `json:"is_today"`
	Slots   []NormalizedSlot `json:"slots"`
}

// AvailabilityCalendar is an ordered, non-empty sequence of days. Absence of
// any published schedule is represented by a nil *AvailabilityCalendar, never
// by an empty one, so callers can distinguish "unregistered" from "no open
// slots".
type AvailabilityCalendar struct {
	Days []NormalizedDay `json:"days"`
}

// SelectedSlot is a candidate the customer toggled on the grid. Instants are
// carried as RFC3339 strings; matching against grid cells always goes through
// parsed absolute instants, never raw string comparison.
type SelectedSlot struct {
	StartAt string     `json:"start_at"`
	EndAt   string     `json:"end_at"`
	Date    string     `json:"date"`
	Status  SlotStatus `json:"status"`
}
