package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/coldbreakfast/landsraad-bot/internal/clock"
)

// defaultHour is the local hour the daily check fires at.
const defaultHour = 3

// Scheduler runs a task once a day at a fixed local hour. It exists so the
// Tuesday schedule post happens without anyone typing a command.
type Scheduler struct {
	task         func(ctx context.Context) error
	hour         int
	location     *time.Location
	timeProvider clock.TimeProvider
}

// Config holds configuration for the scheduler
type Config struct {
	Task         func(ctx context.Context) error // Required
	Location     *time.Location                  // Required
	Hour         int                             // Optional, defaults to 03:00 local
	TimeProvider clock.TimeProvider              // Optional, will use system clock if nil
}

// New creates a new daily scheduler
func New(cfg *Config) *Scheduler {
	if cfg.Task == nil {
		panic("task is required")
	}
	if cfg.Location == nil {
		panic("location is required")
	}

	s := &Scheduler{
		task:         cfg.Task,
		hour:         cfg.Hour,
		location:     cfg.Location,
		timeProvider: cfg.TimeProvider,
	}
	if s.hour <= 0 {
		s.hour = defaultHour
	}
	if s.timeProvider == nil {
		s.timeProvider = clock.NewSystemClock()
	}

	return s
}

// NextRun returns the next firing time strictly after now.
func (s *Scheduler) NextRun(now time.Time) time.Time {
	local := now.In(s.location)
	next := time.Date(local.Year(), local.Month(), local.Day(), s.hour, 0, 0, 0, s.location)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run blocks, firing the task daily, until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		now := s.timeProvider.Now()
		next := s.NextRun(now)
		timer := time.NewTimer(next.Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			if err := s.task(ctx); err != nil {
				log.Printf("Daily check failed: %v", err)
			}
		}
	}
}
