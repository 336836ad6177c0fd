package cronexpr

import "time"

// now returns the current time from the configured clock.
func (s *Schedule) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

// Upcoming returns the next n instants after the current time of the
// schedule's clock. See NextN.
func (s *Schedule) Upcoming(n int) ([]time.Time, error) {
	return NextN(s, s.now(), n)
}

// Recent returns the last n instants before the current time of the
// schedule's clock, most recent first. See PrevN.
func (s *Schedule) Recent(n int) ([]time.Time, error) {
	return PrevN(s, s.now(), n)
}
