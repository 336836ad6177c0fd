package cronexpr

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors matched by the typed errors below, for use with errors.Is.
var (
	// ErrInvalidSpec is matched by every *ParseError.
	ErrInvalidSpec = errors.New("invalid cron expression")

	// ErrNotParsed is matched by every *StateError.
	ErrNotParsed = errors.New("no schedule parsed")

	// ErrNoMatch is matched by every *NotFoundError.
	ErrNoMatch = errors.New("no matching time within search horizon")
)

// ParseError is returned when an expression, a field or an array of values
// cannot be parsed. Nothing is applied when it is returned.
type ParseError struct {
	// Unit is the offending field. It is -1 when the error concerns the
	// expression as a whole (for example a wrong field count).
	Unit Unit
	// Token is the atom or value that failed, if any.
	Token string
	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	switch {
	case !e.Unit.Valid():
		return fmt.Sprintf("cronexpr: %v", e.Err)
	case e.Token == "":
		return fmt.Sprintf("cronexpr: %s: %v", e.Unit, e.Err)
	default:
		return fmt.Sprintf("cronexpr: %s field %q: %v", e.Unit, e.Token, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrInvalidSpec) match any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrInvalidSpec }

// StateError is returned when a Schedule is queried before it holds a
// successfully parsed expression.
type StateError struct {
	Op string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cronexpr: %s: %v", e.Op, ErrNotParsed)
}

// Is lets errors.Is(err, ErrNotParsed) match any StateError.
func (e *StateError) Is(target error) bool { return target == ErrNotParsed }

// NotFoundError is returned when the search reaches its horizon without
// finding a matching instant.
type NotFoundError struct {
	From     time.Time
	Backward bool
	Years    int
}

func (e *NotFoundError) Error() string {
	dir := "after"
	if e.Backward {
		dir = "before"
	}
	return fmt.Sprintf("cronexpr: no match within %d years %s %s",
		e.Years, dir, e.From.Format(time.RFC3339))
}

// Is lets errors.Is(err, ErrNoMatch) match any NotFoundError.
func (e *NotFoundError) Is(target error) bool { return target == ErrNoMatch }

func parseErr(u Unit, token string, format string, args ...any) *ParseError {
	return &ParseError{Unit: u, Token: token, Err: fmt.Errorf(format, args...)}
}
