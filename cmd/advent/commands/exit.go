package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dyluth/advent/internal/input"
	"github.com/dyluth/advent/internal/printer"
	"github.com/dyluth/advent/internal/runner"
	"github.com/dyluth/advent/pkg/puzzle"
)

// Process exit statuses.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitUnknownDay = 2
	ExitAuth       = 3
	ExitNetwork    = 4
	ExitIO         = 5
	ExitLogic      = 6
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case puzzle.IsUnknownDay(err):
		return ExitUnknownDay
	case input.IsAuth(err):
		return ExitAuth
	case input.IsNetwork(err):
		return ExitNetwork
	case input.IsIO(err):
		return ExitIO
	case puzzle.IsLogic(err):
		return ExitLogic
	default:
		return ExitFailure
	}
}

// report prints err unless a command already did, and returns an error that
// still maps to the same exit status.
func report(err error) error {
	var reported *printer.Reported
	if errors.As(err, &reported) {
		return err
	}

	context := map[string]string{}
	var phaseErr *runner.PhaseError
	if errors.As(err, &phaseErr) {
		context["Day"] = fmt.Sprintf("%d", int(phaseErr.Day))
		context["Phase"] = phaseErr.Phase
	}

	var unknown *puzzle.UnknownDayError
	var auth *input.AuthError
	var ioErr *input.IOError
	switch {
	case errors.As(err, &unknown):
		return printer.Fail(err, "unknown day", err.Error(), nil, []string{
			"Run 'advent days' to list registered days",
		})
	case errors.As(err, &auth):
		if auth.Day != 0 {
			context["Expected file"] = filepath.Join(env.inputDir(), auth.Day.Filename())
		}
		return printer.Fail(err, "not authorized to download input", err.Error(), context, []string{
			"Set AOC_SESSION to the session cookie from adventofcode.com",
			"Point session_file in advent.yml at a file holding the cookie",
			"Save the input to the expected file by hand",
		})
	case input.IsNetwork(err):
		return printer.Fail(err, "failed to download input", err.Error(), context, []string{
			"Check your network connection and try again",
			"Raise http.timeout or http.retries in advent.yml",
		})
	case errors.As(err, &ioErr):
		if ioErr.Path != "" {
			context["Path"] = ioErr.Path
		}
		return printer.Fail(err, "input cache error", err.Error(), context, []string{
			"Check that input_dir exists and is writable",
			"For the redis cache, check cache.redis_url and that the server is running",
		})
	case puzzle.IsLogic(err):
		return printer.Fail(err, "puzzle could not be solved", err.Error(), context, []string{
			"Check that the cached input is complete and belongs to this day",
		})
	default:
		return printer.Fail(err, "command failed", err.Error(), context, nil)
	}
}

func (e *environment) inputDir() string {
	if e == nil {
		return "input"
	}
	return e.config.InputDir
}
