package cronexpr

import "time"

// DefaultMaxSearchYears is the search horizon used when none is configured.
const DefaultMaxSearchYears = 5

// direction selects which way the search walks through calendar time.
type direction int

const (
	forward direction = iota
	backward
)

// cursor is a calendar position at minute resolution. Months and days are
// 1-based like time.Date.
type cursor struct {
	year, month, day, hour, minute int
}

func cursorOf(t time.Time) cursor {
	return cursor{t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute()}
}

func (c cursor) time(loc *time.Location) time.Time {
	return time.Date(c.year, time.Month(c.month), c.day, c.hour, c.minute, 0, 0, loc)
}

// daysIn returns the number of days of the given month, honoring leap years.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// weekday returns the day of the week (0 = Sunday) of the cursor's date.
func (c cursor) weekday() int {
	return int(time.Date(c.year, time.Month(c.month), c.day, 0, 0, 0, 0, time.UTC).Weekday())
}

// Carry helpers. Each moves one step in the named field and resets the less
// significant fields to their first (forward) or last (backward) position.

func (c *cursor) nextYear() {
	c.year++
	c.month, c.day, c.hour, c.minute = 1, 1, 0, 0
}

func (c *cursor) prevYear() {
	c.year--
	c.month, c.day, c.hour, c.minute = 12, 31, 23, 59
}

func (c *cursor) nextMonth() {
	c.month++
	if c.month > 12 {
		c.nextYear()
		return
	}
	c.day, c.hour, c.minute = 1, 0, 0
}

func (c *cursor) prevMonth() {
	c.month--
	if c.month < 1 {
		c.prevYear()
		return
	}
	c.day, c.hour, c.minute = daysIn(c.year, c.month), 23, 59
}

func (c *cursor) nextDay() {
	c.day++
	if c.day > daysIn(c.year, c.month) {
		c.nextMonth()
		return
	}
	c.hour, c.minute = 0, 0
}

func (c *cursor) prevDay() {
	c.day--
	if c.day < 1 {
		c.prevMonth()
		return
	}
	c.hour, c.minute = 23, 59
}

func (c *cursor) nextHour() {
	c.hour++
	if c.hour > 23 {
		c.nextDay()
		return
	}
	c.minute = 0
}

func (c *cursor) prevHour() {
	c.hour--
	if c.hour < 0 {
		c.prevDay()
		return
	}
	c.minute = 59
}

func (c *cursor) nextMinute() {
	c.minute++
	if c.minute > 59 {
		c.nextHour()
	}
}

func (c *cursor) prevMinute() {
	c.minute--
	if c.minute < 0 {
		c.prevHour()
	}
}

// dayMatches applies the classic cron rule for the two day fields: when both
// are restricted a day matches if either field matches; when only one is
// restricted that field alone decides.
func dayMatches(fields *[numUnits]Field, c cursor) bool {
	dom, dow := &fields[DayOfMonth], &fields[DayOfWeek]
	domFull, dowFull := dom.IsFull(), dow.IsFull()
	switch {
	case domFull && dowFull:
		return true
	case dowFull:
		return dom.Contains(c.day)
	case domFull:
		return dow.Contains(c.weekday())
	default:
		return dom.Contains(c.day) || dow.Contains(c.weekday())
	}
}

// search finds the nearest instant strictly after (forward) or strictly
// before (backward) from at which all fields match. The walk is bounded by
// maxYears calendar years from from's year.
//
// General approach: check the fields from most to least significant. When a
// field does not match, jump it straight to its next allowed value (carrying
// into the more significant field on wrap-around), reset everything below it
// and start over.
func search(fields *[numUnits]Field, from time.Time, dir direction, maxYears int) (time.Time, error) {
	if maxYears <= 0 {
		maxYears = DefaultMaxSearchYears
	}
	loc := from.Location()

	// Strictness: never return from itself. Going backward, the minute that
	// contains from is still a candidate when from has seconds.
	c := cursorOf(from)
	switch {
	case dir == forward:
		c.nextMinute()
	case from.Second() == 0 && from.Nanosecond() == 0:
		c.prevMinute()
	}

	yearLimit := from.Year() + maxYears
	if dir == backward {
		yearLimit = from.Year() - maxYears
	}
	notFound := &NotFoundError{From: from, Backward: dir == backward, Years: maxYears}

	for {
		if dir == forward && c.year > yearLimit || dir == backward && c.year < yearLimit {
			return time.Time{}, notFound
		}

		if !fields[Month].Contains(c.month) {
			if dir == forward {
				stepField(&c.month, fields[Month], dir, c.nextYear, func() { c.day, c.hour, c.minute = 1, 0, 0 })
			} else {
				stepField(&c.month, fields[Month], dir, c.prevYear, func() {
					c.day, c.hour, c.minute = daysIn(c.year, c.month), 23, 59
				})
			}
			continue
		}

		if !dayMatches(fields, c) {
			if dir == forward {
				c.nextDay()
			} else {
				c.prevDay()
			}
			continue
		}

		if !fields[Hour].Contains(c.hour) {
			if dir == forward {
				stepField(&c.hour, fields[Hour], dir, c.nextDay, func() { c.minute = 0 })
			} else {
				stepField(&c.hour, fields[Hour], dir, c.prevDay, func() { c.minute = 59 })
			}
			continue
		}

		if !fields[Minute].Contains(c.minute) {
			if dir == forward {
				stepField(&c.minute, fields[Minute], dir, c.nextHour, func() {})
			} else {
				stepField(&c.minute, fields[Minute], dir, c.prevHour, func() {})
			}
			continue
		}

		t := c.time(loc)
		// Local wall clock times that fall into a DST gap are normalized by
		// time.Date; skip them unless they still land on the right side of from.
		if cursorOf(t) == c && (dir == forward && t.After(from) || dir == backward && t.Before(from)) {
			return t, nil
		}
		if dir == forward {
			c.nextMinute()
		} else {
			c.prevMinute()
		}
	}
}

// stepField moves *v to the nearest allowed value of f in the given
// direction. If there is none before the field wraps around, carry is called
// to move the more significant field instead; otherwise reset puts the less
// significant fields at their first (or last) position.
func stepField(v *int, f Field, dir direction, carry, reset func()) {
	var (
		next int
		ok   bool
	)
	if dir == forward {
		next, ok = f.nextFrom(*v)
	} else {
		next, ok = f.prevFrom(*v)
	}
	if !ok {
		carry()
		return
	}
	*v = next
	reset()
}
