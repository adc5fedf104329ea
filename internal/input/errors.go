package input

import (
	"errors"
	"fmt"

	"github.com/dyluth/advent/pkg/puzzle"
)

// AuthError is returned when the puzzle site rejects the session, or when no
// session is configured and the input is not cached.
type AuthError struct {
	Day    puzzle.Day
	Op     string
	Status int    // 0 when no request was made
	Hint   string // optional remediation
}

func (e *AuthError) Error() string {
	msg := fmt.Sprintf("%s: %s: not authorized", e.Day, e.Op)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// IsAuth returns true if err is or wraps an AuthError.
func IsAuth(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

// NetworkError covers transport failures, unexpected HTTP statuses and empty
// responses.
type NetworkError struct {
	Day    puzzle.Day
	Op     string
	Status int // 0 for transport failures
	Err    error

	timeout bool
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s: unexpected status %d: %v", e.Day, e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Day, e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request ran past its deadline.
func (e *NetworkError) Timeout() bool {
	return e.timeout
}

// IsNetwork returns true if err is or wraps a NetworkError.
func IsNetwork(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

// IOError is returned when the input cache cannot be read or written.
type IOError struct {
	Day  puzzle.Day // 0 when not tied to a single day
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	if e.Day != 0 {
		msg = fmt.Sprintf("%s: %s", e.Day, msg)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIO returns true if err is or wraps an IOError.
func IsIO(err error) bool {
	var target *IOError
	return errors.As(err, &target)
}
