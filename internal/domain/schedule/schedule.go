// Package schedule computes the fixed weekly event cadence. Everything here
// is a pure function of the supplied time so it can be tested without a
// clock; the daily trigger lives in internal/scheduler.
package schedule

import "time"

// Events holds the next occurrence of each recurring weekly event, in the
// reference timezone of the time they were computed from.
type Events struct {
	// StormStart is the next Monday 17:00 in the reference timezone.
	StormStart time.Time
	// StormEnd is ten hours after StormStart (Tuesday 03:00).
	StormEnd time.Time
	// NewTermStart coincides with the storm ending.
	NewTermStart time.Time
	// VotingStart is the next Saturday 18:00.
	VotingStart time.Time
	// VotingEnd is twenty-four hours after VotingStart.
	VotingEnd time.Time
}

// NextOccurrence returns the next time the given weekday/time comes around
// after now, in now's location. A weekday/time that has already passed this
// week, including exactly now, rolls forward seven days.
func NextOccurrence(now time.Time, weekday time.Weekday, hour, minute int) time.Time {
	daysAhead := int(weekday - now.Weekday())
	if daysAhead < 0 {
		daysAhead += 7
	}

	target := time.Date(now.Year(), now.Month(), now.Day()+daysAhead,
		hour, minute, 0, 0, now.Location())
	if daysAhead == 0 && !now.Before(target) {
		target = target.AddDate(0, 0, 7)
	}
	return target
}

// Compute derives the next occurrence of every weekly event from now.
func Compute(now time.Time) Events {
	stormStart := NextOccurrence(now, time.Monday, 17, 0)
	stormEnd := stormStart.Add(10 * time.Hour)
	votingStart := NextOccurrence(now, time.Saturday, 18, 0)

	return Events{
		StormStart:   stormStart,
		StormEnd:     stormEnd,
		NewTermStart: stormEnd,
		VotingStart:  votingStart,
		VotingEnd:    votingStart.Add(24 * time.Hour),
	}
}
