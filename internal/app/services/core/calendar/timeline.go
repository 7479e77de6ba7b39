package calendar

import "fmt"

// BuildTimeline produces the fixed HH:mm labels spanning the business day,
// from openHour (inclusive) to closeHour (exclusive) in stepMinutes
// increments.
func BuildTimeline(openHour, closeHour, stepMinutes int) []string {
	if stepMinutes <= 0 {
		stepMinutes = 30
	}
	var labels []string
	for minutes := openHour * 60; minutes < closeHour*60; minutes += stepMinutes {
		labels = append(labels, fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
	}
	return labels
}
