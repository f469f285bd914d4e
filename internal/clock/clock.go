// Package clock provides an injectable time source.
package clock

//go:generate mockgen -destination=mocks/mock_clock.go -package=mockclock -source=clock.go

import "time"

// TimeProvider supplies the current time. Injected everywhere a timestamp
// or a "now" decision is made so tests can pin the clock.
type TimeProvider interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// NewSystemClock returns a TimeProvider backed by time.Now.
func NewSystemClock() TimeProvider {
	return systemClock{}
}
