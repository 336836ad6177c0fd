package cronexpr

import (
	"errors"
	"testing"
	"time"
)

// FuzzParse tests the parser against arbitrary input. It verifies that
// malformed input is rejected with a *ParseError and that anything accepted
// formats back to an equivalent schedule.
func FuzzParse(f *testing.F) {
	// Seed corpus with valid expressions
	f.Add("* * * * *")
	f.Add("0 0 1 1 *")
	f.Add("*/5 * * * *")
	f.Add("0 0 * * MON-FRI")
	f.Add("0 9-17 * * *")
	f.Add("0,30 * * * *")
	f.Add("0 0 1,15 * *")
	f.Add("5/15 */3 1-10/2,20 jan,mar-may sun,wed-fri")

	// Edge cases
	f.Add("59 23 31 12 6")
	f.Add("0 0 1 1 0")
	f.Add("0-59 0-23 1-31 1-12 0-6")
	f.Add("*/1 */1 */1 */1 */1")

	// Invalid inputs that should not panic
	f.Add("")
	f.Add("    ")
	f.Add("invalid")
	f.Add("* * *")
	f.Add("@daily")
	f.Add("60 * * * *")
	f.Add("-1 * * * *")
	f.Add("* 25 * * *")
	f.Add("* * 32 * *")
	f.Add("* * * 13 *")
	f.Add("* * * * 7")
	f.Add("*/0 * * * *")
	f.Add("5-3 * * * *")
	f.Add("1,,2 * * * *")
	f.Add("* * ? * *")

	f.Fuzz(func(t *testing.T, spec string) {
		s, err := Parse(spec)
		if err != nil {
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) returned %T, want *ParseError", spec, err)
			}
			return
		}

		again, err := Parse(s.String())
		if err != nil {
			t.Fatalf("canonical form %q of %q does not parse: %v", s.String(), spec, err)
		}
		if again.String() != s.String() {
			t.Fatalf("canonical form not stable: %q -> %q", s.String(), again.String())
		}
	})
}

// FuzzScheduleNext tests that Next and Prev are strict and land on matching
// minutes for arbitrary reference times.
func FuzzScheduleNext(f *testing.F) {
	f.Add("0 * * * *", int64(0))
	f.Add("*/15 9-17 * * 1-5", int64(1704704700))
	f.Add("0 0 29 2 *", int64(1456790400))
	f.Add("30 2 * * *", int64(1331530200))
	f.Add("0 0 13 * 5", int64(-86400))

	f.Fuzz(func(t *testing.T, spec string, unix int64) {
		s, err := Parse(spec, WithMaxSearchYears(2))
		if err != nil {
			return
		}
		// Keep the reference within a sane range of years.
		from := time.Unix(unix%(200*365*24*3600), 0).UTC()

		if next, err := s.Next(from); err == nil {
			if !next.After(from) {
				t.Fatalf("Next(%s) = %s is not after the reference", from, next)
			}
			if ok, _ := s.Matches(next); !ok {
				t.Fatalf("Next(%s) = %s does not match %q", from, next, spec)
			}
		}
		if prev, err := s.Prev(from); err == nil {
			if !prev.Before(from) {
				t.Fatalf("Prev(%s) = %s is not before the reference", from, prev)
			}
			if ok, _ := s.Matches(prev); !ok {
				t.Fatalf("Prev(%s) = %s does not match %q", from, prev, spec)
			}
		}
	})
}
