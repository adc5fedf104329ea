package puzzle

import (
	"strconv"
	"strings"
)

// Answer is the printable result of one part.
type Answer string

// Int renders an integer answer.
func Int(n int) Answer {
	return Answer(strconv.Itoa(n))
}

// Text wraps a textual answer.
func Text(s string) Answer {
	return Answer(s)
}

// Ints renders a list of integers joined by commas, e.g. "4,6,3".
func Ints(values []int) Answer {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return Answer(strings.Join(parts, ","))
}

func (a Answer) String() string {
	return string(a)
}
