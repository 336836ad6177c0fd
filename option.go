package cronexpr

import (
	"github.com/go-logr/logr"
	"k8s.io/utils/clock"
)

// Option represents a modification to the default behavior of a Schedule.
type Option func(*Schedule)

// WithMaxSearchYears sets how many calendar years Next and Prev search
// before giving up with a *NotFoundError.
//
// The default is 5 years. Values <= 0 will use the default.
//
// Use cases:
//   - Shorter limits for faster failure detection on impossible schedules
//   - Longer limits for rare schedules (e.g., "Friday the 13th in February")
//
// Example:
//
//	s, err := cronexpr.Parse("0 0 13 2 5", cronexpr.WithMaxSearchYears(20))
func WithMaxSearchYears(years int) Option {
	return func(s *Schedule) {
		if years <= 0 {
			years = DefaultMaxSearchYears
		}
		s.maxSearchYears = years
	}
}

// WithLogger uses the provided logger.
func WithLogger(logger logr.Logger) Option {
	return func(s *Schedule) {
		s.logger = logger
	}
}

// WithClock uses the provided clock for Upcoming and Recent instead of the
// wall clock. This is useful for testing time-dependent behavior.
//
// Example:
//
//	fake := clocktesting.NewFakePassiveClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
//	s, _ := cronexpr.Parse("0 * * * *", cronexpr.WithClock(fake))
func WithClock(c clock.PassiveClock) Option {
	return func(s *Schedule) {
		s.clock = c
	}
}
