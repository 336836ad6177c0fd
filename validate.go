package cronexpr

import (
	"errors"
	"strings"
	"time"
)

// SpecAnalysis contains detailed information about a cron expression.
// It provides insight into the schedule without keeping a Schedule around.
type SpecAnalysis struct {
	// Valid indicates whether the expression was successfully parsed.
	Valid bool

	// Error contains the parsing error if Valid is false.
	Error error

	// Normalized is the canonical text form of the schedule.
	Normalized string

	// Fields contains the field texts as written, keyed by unit name
	// ("minute", "hour", "day-of-month", "month", "day-of-week").
	Fields map[string]string

	// NextRun and PrevRun are the nearest activations around the reference
	// time. Zero if none exists within the search horizon.
	NextRun time.Time
	PrevRun time.Time

	// Schedule is the parsed schedule, available for further introspection.
	// Nil if the expression is invalid.
	Schedule *Schedule

	// Warnings contains non-fatal warnings about the schedule.
	// These don't prevent parsing but may indicate unexpected behavior.
	Warnings []string
}

// ValidateSpec validates a cron expression without keeping the schedule.
// It returns nil if the expression is valid, or a *ParseError describing the problem.
//
// Example:
//
//	if err := cronexpr.ValidateSpec(userInput); err != nil {
//	    return fmt.Errorf("invalid cron expression: %w", err)
//	}
func ValidateSpec(spec string) error {
	_, err := parseFields(spec)
	return err
}

// ValidateSpecs validates multiple cron expressions at once.
// It returns a map of index to error for any invalid specs.
// If all specs are valid, returns an empty map (not nil).
func ValidateSpecs(specs []string) map[int]error {
	errs := make(map[int]error)
	for i, spec := range specs {
		if err := ValidateSpec(spec); err != nil {
			errs[i] = err
		}
	}
	return errs
}

// AnalyzeSpec parses spec and reports its canonical form, its fields, the
// activations nearest to now and any warnings.
//
// Example:
//
//	result := cronexpr.AnalyzeSpec("0 9 * * MON-FRI", time.Now())
//	if !result.Valid {
//	    log.Printf("Invalid: %v", result.Error)
//	} else {
//	    log.Printf("Next run: %v", result.NextRun)
//	}
func AnalyzeSpec(spec string, now time.Time, opts ...Option) SpecAnalysis {
	result := SpecAnalysis{
		Fields: make(map[string]string),
	}

	schedule, err := Parse(spec, opts...)
	if err != nil {
		result.Error = err
		return result
	}

	result.Valid = true
	result.Schedule = schedule
	result.Normalized = schedule.String()
	for i, text := range strings.Fields(spec) {
		result.Fields[Unit(i).String()] = text
	}

	result.checkDomDowWarning()

	next, nextErr := schedule.Next(now)
	prev, prevErr := schedule.Prev(now)
	result.NextRun, result.PrevRun = next, prev
	if errors.Is(nextErr, ErrNoMatch) && errors.Is(prevErr, ErrNoMatch) {
		result.Warnings = append(result.Warnings,
			"schedule never fires within the search horizon")
	}
	return result
}

// checkDomDowWarning adds a warning if both day fields are restricted, which
// makes either of them sufficient for a day to match.
func (r *SpecAnalysis) checkDomDowWarning() {
	dom, _ := r.Schedule.Field(DayOfMonth)
	dow, _ := r.Schedule.Field(DayOfWeek)
	if !dom.IsFull() && !dow.IsFull() {
		r.Warnings = append(r.Warnings,
			"both day-of-month and day-of-week are restricted - using OR logic "+
				"(either may match)")
	}
}
