package puzzle

import (
	"errors"
	"fmt"
)

// UnknownDayError is returned when a selector does not name a registered
// module: either it is not a day at all, or no module exists for that day.
type UnknownDayError struct {
	Day      Day    // 0 when Selector is not a number
	Selector string // raw selector, set when parsing rejected it
	Reason   string
}

func (e *UnknownDayError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid day %q: %s", e.Selector, e.Reason)
	}
	return fmt.Sprintf("no puzzle registered for day %d", int(e.Day))
}

// IsUnknownDay returns true if err is or wraps an UnknownDayError.
func IsUnknownDay(err error) bool {
	var target *UnknownDayError
	return errors.As(err, &target)
}

// LogicError reports puzzle input that the algorithm cannot solve.
// Day and Part are filled in by the module wrapper when a solver returns one.
type LogicError struct {
	Day    Day
	Part   int
	Reason string
}

func (e *LogicError) Error() string {
	if e.Day == 0 {
		return fmt.Sprintf("unsolvable input: %s", e.Reason)
	}
	return fmt.Sprintf("%s part %d: unsolvable input: %s", e.Day, e.Part, e.Reason)
}

// Unsolvable creates a LogicError with a formatted reason.
func Unsolvable(format string, a ...any) error {
	return &LogicError{Reason: fmt.Sprintf(format, a...)}
}

// IsLogic returns true if err is or wraps a LogicError.
func IsLogic(err error) bool {
	var target *LogicError
	return errors.As(err, &target)
}
