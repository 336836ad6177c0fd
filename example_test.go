package cronexpr_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/netresearch/go-cronexpr"
)

// This example demonstrates parsing an expression and finding the next
// activation.
func Example() {
	s, err := cronexpr.Parse("*/15 9-17 * * MON-FRI")
	if err != nil {
		panic(err)
	}

	from := time.Date(2024, time.January, 8, 9, 5, 0, 0, time.UTC)
	next, _ := s.Next(from)
	fmt.Println(s)
	fmt.Println(next.Format(time.RFC3339))
	// Output:
	// 0,15,30,45 9-17 * * 1-5
	// 2024-01-08T09:15:00Z
}

// This example demonstrates walking backwards from a reference time.
func ExampleSchedule_Prev() {
	s := cronexpr.MustParse("0 0 1 * *")

	prev, _ := s.Prev(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	fmt.Println(prev.Format(time.RFC3339))
	// Output: 2024-02-01T00:00:00Z
}

// This example demonstrates the explicit array form of a schedule.
func ExampleSchedule_Array() {
	s := cronexpr.MustParse("0,30 9 * jan-mar mon")

	values, _ := s.Array()
	fmt.Println(values[0], values[1], values[3], values[4])
	// Output: [0 30] [9] [1 2 3] [1]
}

// This example demonstrates building a schedule from explicit value sets.
func ExampleFromArray() {
	s, err := cronexpr.FromArray([][]int{{0}, {6, 18}, {1, 15}, {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, {0, 1, 2, 3, 4, 5, 6}})
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: 0 6,18 1,15 * *
}

// This example demonstrates inspecting a parse error.
func ExampleParseError() {
	_, err := cronexpr.Parse("0 25 * * *")

	var pe *cronexpr.ParseError
	if errors.As(err, &pe) {
		fmt.Println(pe.Unit, pe.Token)
	}
	fmt.Println(errors.Is(err, cronexpr.ErrInvalidSpec))
	// Output:
	// hour 25
	// true
}

// This example demonstrates listing upcoming activations.
func ExampleNextN() {
	s := cronexpr.MustParse("0 9 * * MON-FRI")

	// Friday afternoon.
	from := time.Date(2024, time.June, 14, 15, 0, 0, 0, time.UTC)
	times, _ := cronexpr.NextN(s, from, 3)
	for _, t := range times {
		fmt.Println(t.Format("Mon 2006-01-02 15:04"))
	}
	// Output:
	// Mon 2024-06-17 09:00
	// Tue 2024-06-18 09:00
	// Wed 2024-06-19 09:00
}

// This example demonstrates the search horizon.
func ExampleWithMaxSearchYears() {
	s := cronexpr.MustParse("0 0 29 2 *", cronexpr.WithMaxSearchYears(2))

	_, err := s.Next(time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC))
	fmt.Println(errors.Is(err, cronexpr.ErrNoMatch))
	// Output: true
}

// This example demonstrates validating user input.
func ExampleValidateSpec() {
	for _, spec := range []string{"0 9 * * MON-FRI", "0 9 * * 7"} {
		if err := cronexpr.ValidateSpec(spec); err != nil {
			fmt.Println("invalid:", spec)
			continue
		}
		fmt.Println("valid:", spec)
	}
	// Output:
	// valid: 0 9 * * MON-FRI
	// invalid: 0 9 * * 7
}
