package cronexpr

import "strings"

// Unit identifies one of the five positions of a cron expression.
type Unit int

// The five cron fields, in the order they appear in an expression.
const (
	Minute Unit = iota
	Hour
	DayOfMonth
	Month
	DayOfWeek

	numUnits = 5

	// noUnit marks errors that concern a whole expression.
	noUnit Unit = -1
)

// UnitSpec describes the accepted range of a cron field (plus a map of name
// to value for the fields that have aliases).
type UnitSpec struct {
	Unit     Unit
	Min, Max int
	Names    map[string]int
}

// The bounds for each field.
var units = [numUnits]UnitSpec{
	{Unit: Minute, Min: 0, Max: 59},
	{Unit: Hour, Min: 0, Max: 23},
	{Unit: DayOfMonth, Min: 1, Max: 31},
	{Unit: Month, Min: 1, Max: 12, Names: map[string]int{
		"jan": 1,
		"feb": 2,
		"mar": 3,
		"apr": 4,
		"may": 5,
		"jun": 6,
		"jul": 7,
		"aug": 8,
		"sep": 9,
		"oct": 10,
		"nov": 11,
		"dec": 12,
	}},
	{Unit: DayOfWeek, Min: 0, Max: 6, Names: map[string]int{
		"sun": 0,
		"mon": 1,
		"tue": 2,
		"wed": 3,
		"thu": 4,
		"fri": 5,
		"sat": 6,
	}},
}

var unitNames = [numUnits]string{
	"minute",
	"hour",
	"day-of-month",
	"month",
	"day-of-week",
}

// Units returns the specs of all five fields in expression order.
func Units() [numUnits]UnitSpec {
	return units
}

// Spec returns the UnitSpec for u. It panics if u is not one of the five
// defined units.
func (u Unit) Spec() UnitSpec {
	return units[u]
}

// Valid reports whether u names one of the five cron fields.
func (u Unit) Valid() bool {
	return u >= Minute && u <= DayOfWeek
}

func (u Unit) String() string {
	if !u.Valid() {
		return "unknown"
	}
	return unitNames[u]
}

// lookup resolves a case-insensitive alias token.
func (s UnitSpec) lookup(token string) (int, bool) {
	if s.Names == nil {
		return 0, false
	}
	v, ok := s.Names[strings.ToLower(token)]
	return v, ok
}

// contains reports whether v lies within [Min, Max].
func (s UnitSpec) contains(v int) bool {
	return v >= s.Min && v <= s.Max
}
