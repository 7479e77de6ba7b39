package civiltime

import (
	"fmt"
	"time"
)

// Zone is the single civil timezone every conversion in the service uses.
// The storefront must render byte-identical calendars no matter where the
// process runs, so the executing host's local timezone is never consulted.
var Zone = time.FixedZone("Asia/Tokyo", 9*60*60)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ToCivilDate converts an absolute instant to its YYYY-MM-DD calendar day in Zone.
func ToCivilDate(t time.Time) string {
	return t.In(Zone).Format(DateLayout)
}

// ToCivilTime converts an absolute instant to its HH:mm wall clock in Zone.
func ToCivilTime(t time.Time) string {
	return t.In(Zone).Format(TimeLayout)
}

// CivilMidnight returns the instant at 00:00 of the given civil date in Zone.
func CivilMidnight(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, Zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid civil date %q: %w", date, err)
	}
	return t, nil
}

// AddCivilDays shifts a civil date by n calendar days using date arithmetic,
// so month, year and leap-day rollovers are handled by the time package.
func AddCivilDays(date string, n int) (string, error) {
	midnight, err := CivilMidnight(date)
	if err != nil {
		return "", err
	}
	return midnight.AddDate(0, 0, n).In(Zone).Format(DateLayout), nil
}

// WeekRange returns 7 consecutive civil dates starting at the given date.
func WeekRange(date string) ([]string, error) {
	midnight, err := CivilMidnight(date)
	if err != nil {
		return nil, err
	}
	days := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, midnight.AddDate(0, 0, i).In(Zone).Format(DateLayout))
	}
	return days, nil
}

// ParseInstant parses an ISO instant with explicit offset, as delivered by the
// availability backing service.
func ParseInstant(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid instant %q: %w", value, err)
	}
	return t, nil
}
