package cronexpr

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/utils/clock"
)

// MaxSpecLength is the maximum allowed length for a cron expression.
// This limit prevents potential resource exhaustion from extremely long inputs.
const MaxSpecLength = 1024

// Schedule is a parsed five-field cron expression.
//
// A Schedule starts out unparsed; ParseString or ParseArray populate it.
// Re-parsing replaces all five fields at once and only on success, so a
// failed parse leaves the previous schedule untouched. Queries (Next, Prev,
// Format, Array) are safe for concurrent use and always observe either the
// old or the new field set.
//
// The zero value is an unparsed Schedule with default options.
type Schedule struct {
	fields atomic.Pointer[[numUnits]Field]

	maxSearchYears int
	logger         logr.Logger
	clock          clock.PassiveClock
}

// New returns an unparsed Schedule configured by the given options.
func New(opts ...Option) *Schedule {
	s := &Schedule{
		maxSearchYears: DefaultMaxSearchYears,
		logger:         DefaultLogger,
		clock:          clock.RealClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse returns a new Schedule representing the given expression. It requires
// 5 whitespace-separated fields: minute, hour, day of month, month and day of
// week, in that order. It returns a *ParseError if the expression is not
// valid.
func Parse(spec string, opts ...Option) (*Schedule, error) {
	s := New(opts...)
	if err := s.ParseString(spec); err != nil {
		return nil, err
	}
	return s, nil
}

// MustParse is like Parse but panics if the expression is invalid. It is
// meant for expressions that are constants in the calling program.
func MustParse(spec string, opts ...Option) *Schedule {
	s, err := Parse(spec, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromArray returns a new Schedule holding exactly the given values. values
// must have five rows in field order.
func FromArray(values [][]int, opts ...Option) (*Schedule, error) {
	s := New(opts...)
	if err := s.ParseArray(values); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseString parses spec and, on success, replaces the schedule.
func (s *Schedule) ParseString(spec string) error {
	fields, err := parseFields(spec)
	if err != nil {
		s.logger.V(1).Info("Rejected cron expression", "spec", spec, "error", err.Error())
		return err
	}
	s.fields.Store(fields)
	s.logger.V(1).Info("Parsed cron expression", "spec", spec, "normalized", formatFields(fields))
	return nil
}

// ParseArray replaces the schedule with the explicit value sets in values,
// one row per field in expression order.
func (s *Schedule) ParseArray(values [][]int) error {
	if len(values) != numUnits {
		err := parseErr(noUnit, "", "expected exactly %d value sets, found %d", numUnits, len(values))
		s.logger.V(1).Info("Rejected cron array", "error", err.Error())
		return err
	}

	var fields [numUnits]Field
	for i, row := range values {
		f, err := FieldFromValues(row, Unit(i))
		if err != nil {
			s.logger.V(1).Info("Rejected cron array", "error", err.Error())
			return err
		}
		fields[i] = f
	}
	s.fields.Store(&fields)
	s.logger.V(1).Info("Parsed cron array", "normalized", formatFields(&fields))
	return nil
}

func parseFields(spec string) (*[numUnits]Field, error) {
	if len(spec) > MaxSpecLength {
		return nil, parseErr(noUnit, "", "spec too long: %d > %d", len(spec), MaxSpecLength)
	}

	// Split on whitespace.
	texts := strings.Fields(spec)
	if len(texts) != numUnits {
		return nil, parseErr(noUnit, "", "expected exactly %d fields, found %d: %q", numUnits, len(texts), spec)
	}

	var fields [numUnits]Field
	for i, text := range texts {
		f, err := ParseField(text, Unit(i))
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return &fields, nil
}

func formatFields(fields *[numUnits]Field) string {
	parts := make([]string, numUnits)
	for i := range fields {
		parts[i] = fields[i].String()
	}
	return strings.Join(parts, " ")
}

// load returns the current field set or a *StateError naming op.
func (s *Schedule) load(op string) (*[numUnits]Field, error) {
	fields := s.fields.Load()
	if fields == nil {
		return nil, &StateError{Op: op}
	}
	return fields, nil
}

// Parsed reports whether the schedule holds a successfully parsed expression.
func (s *Schedule) Parsed() bool {
	return s.fields.Load() != nil
}

// Format returns the canonical text form of the schedule, e.g.
// "0,15,30,45 9-17 * * 1-5" for "*/15 9-17 * * MON-FRI".
func (s *Schedule) Format() (string, error) {
	fields, err := s.load("format")
	if err != nil {
		return "", err
	}
	return formatFields(fields), nil
}

// String implements fmt.Stringer. It returns the canonical form, or the empty
// string if the schedule has not been parsed.
func (s *Schedule) String() string {
	text, _ := s.Format()
	return text
}

// Array returns the allowed values of all five fields in expression order.
func (s *Schedule) Array() ([][]int, error) {
	fields, err := s.load("array")
	if err != nil {
		return nil, err
	}
	out := make([][]int, numUnits)
	for i := range fields {
		out[i] = fields[i].Values()
	}
	return out, nil
}

// Field returns the parsed field for u.
func (s *Schedule) Field(u Unit) (Field, error) {
	fields, err := s.load("field")
	if err != nil {
		return Field{}, err
	}
	if !u.Valid() {
		return Field{}, fmt.Errorf("cronexpr: unknown unit %d", int(u))
	}
	return fields[u], nil
}

// MaxSearchYears returns the search horizon used by Next and Prev.
func (s *Schedule) MaxSearchYears() int {
	if s.maxSearchYears <= 0 {
		return DefaultMaxSearchYears
	}
	return s.maxSearchYears
}

// Next returns the earliest instant strictly after t at which the schedule
// fires. The result is in t's location and has zero seconds. It returns a
// *NotFoundError if nothing matches within the search horizon.
func (s *Schedule) Next(t time.Time) (time.Time, error) {
	return s.find("next", t, forward)
}

// Prev returns the latest instant strictly before t at which the schedule
// fires. The result is in t's location and has zero seconds. It returns a
// *NotFoundError if nothing matches within the search horizon.
func (s *Schedule) Prev(t time.Time) (time.Time, error) {
	return s.find("prev", t, backward)
}

func (s *Schedule) find(op string, t time.Time, dir direction) (time.Time, error) {
	fields, err := s.load(op)
	if err != nil {
		return time.Time{}, err
	}
	found, err := search(fields, t, dir, s.MaxSearchYears())
	if err != nil {
		s.logger.V(1).Info("No match within search horizon",
			"schedule", formatFields(fields), "op", op, "from", t, "years", s.MaxSearchYears())
		return time.Time{}, err
	}
	return found, nil
}

// Matches reports whether the schedule fires during the minute containing t.
func (s *Schedule) Matches(t time.Time) (bool, error) {
	fields, err := s.load("matches")
	if err != nil {
		return false, err
	}
	c := cursorOf(t)
	return fields[Month].Contains(c.month) &&
		dayMatches(fields, c) &&
		fields[Hour].Contains(c.hour) &&
		fields[Minute].Contains(c.minute), nil
}
