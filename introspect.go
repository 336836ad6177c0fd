package cronexpr

import (
	"errors"
	"time"
)

// Seeker is the query side of a Schedule.
type Seeker interface {
	Next(time.Time) (time.Time, error)
	Prev(time.Time) (time.Time, error)
}

// NextN returns the next n activation times of the schedule, starting after t.
// Returns nil if n <= 0.
//
// The walk stops early when the search horizon is reached; what was found up
// to that point is returned. If nothing at all was found the *NotFoundError is
// returned instead.
//
// This is useful for:
//   - Calendar previews showing upcoming executions
//   - Debugging schedule expressions
//
// Example:
//
//	s := cronexpr.MustParse("0 9 * * MON-FRI")
//	times, err := cronexpr.NextN(s, time.Now(), 10)
func NextN(s Seeker, t time.Time, n int) ([]time.Time, error) {
	return walk(s.Next, t, n)
}

// PrevN returns the previous n activation times of the schedule before t,
// most recent first. It follows the same rules as NextN.
func PrevN(s Seeker, t time.Time, n int) ([]time.Time, error) {
	return walk(s.Prev, t, n)
}

func walk(step func(time.Time) (time.Time, error), t time.Time, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, nil
	}

	times := make([]time.Time, 0, n)
	current := t
	for range n {
		found, err := step(current)
		if err != nil {
			if errors.Is(err, ErrNoMatch) && len(times) > 0 {
				break
			}
			return nil, err
		}
		times = append(times, found)
		current = found
	}
	return times, nil
}

// Between returns all activation times in the range [start, end).
// The end time is exclusive. Returns nil if start is not before end.
//
// WARNING: For high-frequency schedules over long ranges, this can return
// many results. Use BetweenWithLimit for bounded queries.
//
// Example:
//
//	s := cronexpr.MustParse("0 9 * * *")
//	start := time.Now()
//	times, err := cronexpr.Between(s, start, start.AddDate(0, 1, 0))
func Between(s Seeker, start, end time.Time) ([]time.Time, error) {
	return BetweenWithLimit(s, start, end, 0)
}

// BetweenWithLimit returns activation times in the range [start, end) up to
// limit. If limit is 0 or negative, no limit is applied. Reaching the search
// horizon ends the range without an error.
func BetweenWithLimit(s Seeker, start, end time.Time, limit int) ([]time.Time, error) {
	if !start.Before(end) {
		return nil, nil
	}

	var times []time.Time
	if limit > 0 {
		times = make([]time.Time, 0, limit)
	}

	// Next is strict; step back so that start itself can match.
	current := start.Add(-time.Nanosecond)
	for limit <= 0 || len(times) < limit {
		found, err := s.Next(current)
		if errors.Is(err, ErrNoMatch) {
			break
		}
		if err != nil {
			return nil, err
		}
		if !found.Before(end) {
			break
		}
		times = append(times, found)
		current = found
	}
	return times, nil
}
