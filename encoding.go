package cronexpr

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (s *Schedule) MarshalText() ([]byte, error) {
	text, err := s.Format()
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Schedule) UnmarshalText(text []byte) error {
	return s.ParseString(string(text))
}

// MarshalYAML encodes the schedule as its canonical text form.
func (s *Schedule) MarshalYAML() (any, error) {
	return s.Format()
}

// UnmarshalYAML accepts either an expression scalar:
//
//	schedule: "*/15 9-17 * * MON-FRI"
//
// or the explicit array form with one sequence per field:
//
//	schedule: [[0, 30], [9], [1, 15], [1, 2, 3], [1, 2, 3, 4, 5]]
func (s *Schedule) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return s.ParseString(value.Value)
	case yaml.SequenceNode:
		var rows [][]int
		if err := value.Decode(&rows); err != nil {
			return fmt.Errorf("cronexpr: decoding value sets at line %d: %w", value.Line, err)
		}
		return s.ParseArray(rows)
	default:
		return fmt.Errorf("cronexpr: line %d: expected an expression or a list of value sets", value.Line)
	}
}
