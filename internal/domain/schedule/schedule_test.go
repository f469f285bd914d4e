package schedule_test

import (
	"testing"
	"time"

	"github.com/coldbreakfast/landsraad-bot/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pacific(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	return loc
}

func TestNextOccurrenceLaterThisWeek(t *testing.T) {
	loc := pacific(t)
	// Wednesday 10:00
	now := time.Date(2025, 7, 2, 10, 0, 0, 0, loc)
	require.Equal(t, time.Wednesday, now.Weekday())

	next := schedule.NextOccurrence(now, time.Monday, 17, 0)
	assert.Equal(t, time.Date(2025, 7, 7, 17, 0, 0, 0, loc), next,
		"Wednesday rolls to the upcoming Monday, 5 days ahead")
}

func TestNextOccurrenceTodayNotYetPassed(t *testing.T) {
	loc := pacific(t)
	// Monday 09:00
	now := time.Date(2025, 7, 7, 9, 0, 0, 0, loc)
	require.Equal(t, time.Monday, now.Weekday())

	next := schedule.NextOccurrence(now, time.Monday, 17, 0)
	assert.Equal(t, time.Date(2025, 7, 7, 17, 0, 0, 0, loc), next)
}

func TestNextOccurrenceExactBoundaryRolls(t *testing.T) {
	loc := pacific(t)
	// Exactly Monday 17:00 counts as passed
	now := time.Date(2025, 7, 7, 17, 0, 0, 0, loc)

	next := schedule.NextOccurrence(now, time.Monday, 17, 0)
	assert.Equal(t, time.Date(2025, 7, 14, 17, 0, 0, 0, loc), next)
}

func TestNextOccurrencePassedToday(t *testing.T) {
	loc := pacific(t)
	now := time.Date(2025, 7, 7, 17, 0, 1, 0, loc)

	next := schedule.NextOccurrence(now, time.Monday, 17, 0)
	assert.Equal(t, time.Date(2025, 7, 14, 17, 0, 0, 0, loc), next)
}

func TestNextOccurrenceEarlierWeekday(t *testing.T) {
	loc := pacific(t)
	// Sunday looking for Saturday rolls almost a full week
	now := time.Date(2025, 7, 6, 12, 0, 0, 0, loc)
	require.Equal(t, time.Sunday, now.Weekday())

	next := schedule.NextOccurrence(now, time.Saturday, 18, 0)
	assert.Equal(t, time.Date(2025, 7, 12, 18, 0, 0, 0, loc), next)
}

func TestCompute(t *testing.T) {
	loc := pacific(t)
	now := time.Date(2025, 7, 2, 10, 0, 0, 0, loc) // Wednesday

	events := schedule.Compute(now)

	assert.Equal(t, time.Date(2025, 7, 7, 17, 0, 0, 0, loc), events.StormStart)
	assert.Equal(t, time.Date(2025, 7, 8, 3, 0, 0, 0, loc), events.StormEnd)
	assert.Equal(t, events.StormEnd, events.NewTermStart)
	assert.Equal(t, time.Date(2025, 7, 5, 18, 0, 0, 0, loc), events.VotingStart)
	assert.Equal(t, time.Date(2025, 7, 6, 18, 0, 0, 0, loc), events.VotingEnd)
}
