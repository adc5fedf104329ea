package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// FirstDay and LastDay bound the valid day numbers of an event.
const (
	FirstDay Day = 1
	LastDay  Day = 25
)

// Day identifies one puzzle of an event.
type Day int

// ParseDay parses a day selector such as "7" or "day7".
// Non-numeric selectors and days outside FirstDay..LastDay yield an UnknownDayError.
func ParseDay(s string) (Day, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "day")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &UnknownDayError{Selector: s, Reason: "must be a number"}
	}
	day := Day(n)
	if day < FirstDay || day > LastDay {
		return 0, &UnknownDayError{Day: day, Selector: s, Reason: fmt.Sprintf("must be between %d and %d", FirstDay, LastDay)}
	}
	return day, nil
}

// Validate checks that the day lies within FirstDay..LastDay.
func (d Day) Validate() error {
	if d < FirstDay || d > LastDay {
		return fmt.Errorf("invalid day %d: must be between %d and %d", int(d), FirstDay, LastDay)
	}
	return nil
}

// Filename is the cache file name for the day's input, e.g. "day7.in".
func (d Day) Filename() string {
	return fmt.Sprintf("day%d.in", int(d))
}

func (d Day) String() string {
	return fmt.Sprintf("Day %d", int(d))
}
