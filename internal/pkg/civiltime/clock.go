package civiltime

import "time"

// Clock supplies the current instant. It is injected everywhere "now" matters
// so test scenarios can pin time without sharing mutable package state.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by the real wall clock.
func System() Clock {
	return systemClock{}
}

type fixedClock struct {
	instant time.Time
}

func (c fixedClock) Now() time.Time {
	return c.instant
}

// Fixed returns a Clock that always reports the given instant.
func Fixed(instant time.Time) Clock {
	return fixedClock{instant: instant}
}
