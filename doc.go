/*
Package cronexpr parses five-field cron expressions and computes the instants
at which they fire.

It is an expression engine, not a job runner: it answers "when does this
recur next (or previously)" and leaves running jobs, timers and persistence to
the caller.

# Installation

To download the package, run:

	go get github.com/netresearch/go-cronexpr

Import it in your program as:

	import "github.com/netresearch/go-cronexpr"

It requires Go 1.25 or later.

# Usage

	s, err := cronexpr.Parse("0,30 9-17 * * MON-FRI")
	if err != nil {
		return err
	}
	next, err := s.Next(time.Now())
	prev, err := s.Prev(time.Now())

	fmt.Println(s) // 0,30 9-17 * * 1-5

# CRON Expression Format

A cron expression represents a set of times, using 5 space-separated fields.

	Field name   | Allowed values  | Allowed special characters
	----------   | --------------  | --------------------------
	Minutes      | 0-59            | * / , -
	Hours        | 0-23            | * / , -
	Day of month | 1-31            | * / , -
	Month        | 1-12 or JAN-DEC | * / , -
	Day of week  | 0-6 or SUN-SAT  | * / , -

Month and Day-of-week names are case insensitive.  "SUN", "Sun", and "sun"
are equally accepted.

Seconds, year fields, descriptors such as @daily and TZ= prefixes are not
supported.

# Special Characters

Asterisk ( * )

The asterisk indicates that the cron expression will match for all values of
the field; e.g., using an asterisk in the 4th field (month) would indicate
every month.

Slash ( / )

Slashes are used to describe increments of ranges. For example 3-59/15 in the
1st field (minutes) would indicate the 3rd minute of the hour and every 15
minutes thereafter. The form "*\/..." is equivalent to the form
"first-last/...", that is, an increment over the largest possible range of the
field. The form "N/..." is accepted as meaning "N-MAX/...", that is, starting
at N, use the increment until the end of that specific range.

Comma ( , )

Commas are used to separate items of a list. For example, using "MON,WED,FRI"
in the 5th field (day of week) would mean Mondays, Wednesdays and Fridays.

Hyphen ( - )

Hyphens are used to define ranges. For example, 9-17 would indicate every
hour between 9am and 5pm inclusive.

# Day of month and day of week

When both day fields are restricted, a day matches if either of them matches:
"0 0 1 * MON" fires on the first of every month and on every Monday. When only
one of them is restricted, that one alone decides. A field counts as
restricted when its values do not cover the whole range, so "1-31" behaves
exactly like "*".

# Canonical form

Format, String and MarshalText render every field as its explicit value set:
the full range as "*", runs of consecutive values as "a-b", everything else as
a comma separated list. Steps are not reconstructed, so "*\/20" renders as
"0,20,40". Parsing the canonical form yields the same schedule.

# Searching

Next and Prev are strictly exclusive: they never return the reference time
itself. Results have minute resolution and are expressed in the location of
the reference time; the calendar fields of that location are used as-is, no
time zone conversion is performed.

The search walks calendar time and gives up after a number of years
(5 by default, see WithMaxSearchYears), returning a *NotFoundError. This
bounds the work for expressions that can never fire, such as "0 0 30 2 *".

# Errors

Parsing fails with *ParseError, queries on a Schedule that was never parsed
fail with *StateError and exhausted searches fail with *NotFoundError. Each
also matches a sentinel (ErrInvalidSpec, ErrNotParsed, ErrNoMatch) through
errors.Is.

# Thread safety

A parsed Schedule may be queried from multiple goroutines. A re-parse swaps
the whole field set atomically, so readers never see a mix of old and new
fields, and a failed re-parse keeps the previous schedule.

# Logging

Schedules log through github.com/go-logr/logr. Nothing is logged unless a
logger is configured with WithLogger; NewZapLogger provides a zap backed one.
Parse results and horizon exhaustion are logged at V(1).
*/
package cronexpr
