// Package printer renders human-facing CLI output. Answers and tables go to
// stdout; diagnostics go to stderr so stdout stays pipeable.
package printer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects printer output. Tests use it to capture what a
// command printed; passing nil restores the process streams.
func SetOutput(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

// Stdout returns the writer used for results.
func Stdout() io.Writer { return stdout }

// Success prints a success message in green with a checkmark prefix
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprint(stdout, msg)
}

// Info prints an informational message in the default color
func Info(format string, a ...any) {
	fmt.Fprintf(stdout, format, a...)
}

// Warning prints a warning to stderr in yellow
func Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		msg = "⚠️  " + msg
	}
	yellow.Fprint(stderr, msg)
}

// Step prints a progress line to stderr (used in multi-day operations)
func Step(format string, a ...any) {
	cyan.Fprintf(stderr, "→ %s", fmt.Sprintf(format, a...))
}

// Reported is returned by Error and Fail. The message has already been shown
// to the user, so callers should not print it again.
type Reported struct {
	Title string
	Err   error
}

func (r *Reported) Error() string { return r.Title }

func (r *Reported) Unwrap() error { return r.Err }

// Error prints a formatted error with title, explanation, and suggestions
// to stderr and returns a Reported carrying only the title.
func Error(title string, explanation string, suggestions []string) error {
	return Fail(nil, title, explanation, nil, suggestions)
}

// ErrorWithContext is Error with key/value details printed in key order.
func ErrorWithContext(title string, explanation string, context map[string]string, suggestions []string) error {
	return Fail(nil, title, explanation, context, suggestions)
}

// Fail prints like ErrorWithContext and keeps cause reachable through
// errors.As so the exit status can still be derived from it.
func Fail(cause error, title string, explanation string, context map[string]string, suggestions []string) error {
	red.Fprintf(stderr, "%s\n\n", title)

	if explanation != "" {
		fmt.Fprintf(stderr, "%s\n", explanation)
	}

	if len(context) > 0 {
		keys := make([]string, 0, len(context))
		for key := range context {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		fmt.Fprintf(stderr, "\n")
		for _, key := range keys {
			fmt.Fprintf(stderr, "  %s: %s\n", key, context[key])
		}
	}

	if len(suggestions) > 0 {
		fmt.Fprintf(stderr, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(stderr, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(stderr, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(stderr, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	return &Reported{Title: title, Err: cause}
}
