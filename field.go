package cronexpr

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"slices"
	"strconv"
	"strings"
)

// Field is the resolved set of values allowed for one position of a cron
// expression. It is stored as a bit set (bit n set means value n is allowed)
// alongside the sorted list of values.
//
// The zero Field is unparsed and matches nothing.
type Field struct {
	unit   Unit
	bits   uint64
	values []int
}

// ParseField parses the textual syntax of one cron field. A field is a
// comma-separated list of atoms:
//
//	*            every value of the unit
//	n            a single value (or a name such as JAN or MON)
//	a-b          an inclusive range
//	*/s, a-b/s   a range restricted to every s-th value from its start
//	a/s          shorthand for a-max/s
//
// The result is de-duplicated and sorted. Any malformed or out-of-range atom
// fails the whole field with a *ParseError.
func ParseField(text string, u Unit) (Field, error) {
	if !u.Valid() {
		return Field{}, parseErr(u, "", "unknown unit %d", int(u))
	}
	if strings.TrimSpace(text) == "" {
		return Field{}, parseErr(u, text, "empty field")
	}
	spec := u.Spec()

	var set uint64
	for _, expr := range strings.Split(text, ",") {
		if expr == "" {
			return Field{}, parseErr(u, text, "empty list element")
		}
		b, err := getRange(expr, spec)
		if err != nil {
			return Field{}, &ParseError{Unit: u, Token: expr, Err: err}
		}
		set |= b
	}
	return newField(u, set), nil
}

// FieldFromValues builds a Field from an explicit list of values. Values are
// de-duplicated and sorted; the list must be non-empty and every value must
// lie within the unit's range.
func FieldFromValues(values []int, u Unit) (Field, error) {
	if !u.Valid() {
		return Field{}, parseErr(u, "", "unknown unit %d", int(u))
	}
	if len(values) == 0 {
		return Field{}, parseErr(u, "", "no values")
	}
	spec := u.Spec()

	var set uint64
	for _, v := range values {
		if !spec.contains(v) {
			return Field{}, parseErr(u, strconv.Itoa(v),
				"value %d out of range [%d, %d]", v, spec.Min, spec.Max)
		}
		set |= 1 << uint(v)
	}
	return newField(u, set), nil
}

func newField(u Unit, set uint64) Field {
	values := make([]int, 0, bits.OnesCount64(set))
	for rest := set; rest != 0; rest &= rest - 1 {
		values = append(values, bits.TrailingZeros64(rest))
	}
	return Field{unit: u, bits: set, values: values}
}

// Unit returns the position this field was parsed for.
func (f Field) Unit() Unit { return f.unit }

// Values returns a copy of the sorted set of allowed values.
func (f Field) Values() []int { return slices.Clone(f.values) }

// Contains reports whether v is an allowed value.
func (f Field) Contains(v int) bool {
	if v < 0 || v > 63 {
		return false
	}
	return f.bits&(1<<uint(v)) != 0
}

// IsFull reports whether the field allows every value of its unit, i.e. it
// does not restrict anything.
func (f Field) IsFull() bool {
	spec := f.unit.Spec()
	return f.bits != 0 && f.bits == getBits(uint(spec.Min), uint(spec.Max), 1)
}

// Equal reports whether both fields belong to the same unit and allow the
// same values.
func (f Field) Equal(o Field) bool {
	return f.unit == o.unit && f.bits == o.bits
}

// String renders the canonical form of the field: "*" for the full range,
// otherwise runs of consecutive values as "a-b" and isolated values as "a",
// joined by commas. Step notation is never reconstructed.
func (f Field) String() string {
	if f.bits == 0 {
		return ""
	}
	if f.IsFull() {
		return "*"
	}

	var sb strings.Builder
	for i := 0; i < len(f.values); {
		j := i
		for j+1 < len(f.values) && f.values[j+1] == f.values[j]+1 {
			j++
		}
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(f.values[i]))
		if j > i {
			sb.WriteByte('-')
			sb.WriteString(strconv.Itoa(f.values[j]))
		}
		i = j + 1
	}
	return sb.String()
}

// first returns the smallest allowed value.
func (f Field) first() int { return f.values[0] }

// last returns the largest allowed value.
func (f Field) last() int { return f.values[len(f.values)-1] }

// nextFrom returns the smallest allowed value >= v.
func (f Field) nextFrom(v int) (int, bool) {
	if v < 0 {
		v = 0
	}
	if v > 63 {
		return 0, false
	}
	rest := f.bits >> uint(v)
	if rest == 0 {
		return 0, false
	}
	return v + bits.TrailingZeros64(rest), true
}

// prevFrom returns the largest allowed value <= v.
func (f Field) prevFrom(v int) (int, bool) {
	if v < 0 {
		return 0, false
	}
	rest := f.bits
	if v < 63 {
		rest &= 1<<uint(v+1) - 1
	}
	if rest == 0 {
		return 0, false
	}
	return 63 - bits.LeadingZeros64(rest), true
}

// getRange returns the bits indicated by the given expression:
//
//	number | number "-" number [ "/" number ] | "*" [ "/" number ]
//
// or error parsing range.
func getRange(expr string, spec UnitSpec) (uint64, error) {
	rangeAndStep := strings.Split(expr, "/")
	lowAndHigh := strings.Split(rangeAndStep[0], "-")
	singleValue := len(lowAndHigh) == 1 && lowAndHigh[0] != "*"

	start, end, err := parseRangeBounds(lowAndHigh, spec)
	if err != nil {
		return 0, err
	}

	var step uint = 1
	switch len(rangeAndStep) {
	case 1:
	case 2:
		step, err = parseStep(rangeAndStep[1])
		if err != nil {
			return 0, err
		}
		// "N/step" means "N-max/step".
		if singleValue {
			end = uint(spec.Max)
		}
	default:
		return 0, errors.New("too many slashes")
	}

	if err := validateRangeParams(start, end, spec); err != nil {
		return 0, err
	}
	return getBits(start, end, step), nil
}

// parseRangeBounds parses the start/end bounds from a range expression.
func parseRangeBounds(lowAndHigh []string, spec UnitSpec) (start, end uint, err error) {
	if lowAndHigh[0] == "*" {
		if len(lowAndHigh) != 1 {
			return 0, 0, errors.New("wildcard cannot start a range")
		}
		return uint(spec.Min), uint(spec.Max), nil
	}

	start, err = parseIntOrName(lowAndHigh[0], spec)
	if err != nil {
		return 0, 0, err
	}

	switch len(lowAndHigh) {
	case 1:
		return start, start, nil
	case 2:
		end, err = parseIntOrName(lowAndHigh[1], spec)
		if err != nil {
			return 0, 0, err
		}
		return start, end, nil
	default:
		return 0, 0, errors.New("too many hyphens")
	}
}

// validateRangeParams validates the parsed range against the unit bounds.
func validateRangeParams(start, end uint, spec UnitSpec) error {
	if start < uint(spec.Min) {
		return fmt.Errorf("beginning of range (%d) below minimum (%d)", start, spec.Min)
	}
	if end > uint(spec.Max) {
		return fmt.Errorf("end of range (%d) above maximum (%d)", end, spec.Max)
	}
	if start > end {
		return fmt.Errorf("beginning of range (%d) beyond end of range (%d)", start, end)
	}
	return nil
}

// parseIntOrName returns the (possibly-named) integer contained in expr.
func parseIntOrName(expr string, spec UnitSpec) (uint, error) {
	if v, ok := spec.lookup(expr); ok {
		return uint(v), nil
	}
	return parseUint(expr)
}

func parseStep(expr string) (uint, error) {
	step, err := parseUint(expr)
	if err != nil || step == 0 {
		return 0, fmt.Errorf("step of range must be a positive number: %q", expr)
	}
	return step, nil
}

// parseUint parses an unsigned decimal number. Signs are rejected.
func parseUint(expr string) (uint, error) {
	num, err := strconv.ParseUint(expr, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int from %q", expr)
	}
	return uint(num), nil
}

// getBits sets all bits in the range [low, high], modulo the given step size.
func getBits(low, high, step uint) uint64 {
	// If step is 1, use shifts.
	if step == 1 {
		return ^(math.MaxUint64 << (high + 1)) & (math.MaxUint64 << low)
	}

	// Else, use a simple loop.
	var b uint64
	for i := low; i <= high; i += step {
		b |= 1 << i
	}
	return b
}
