// Package runner solves one day at a time and prints its answers.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/dyluth/advent/pkg/puzzle"
)

// Phases of a run, as reported in errors.
const (
	PhaseFetch   = "fetch"
	PhaseParse   = "parse"
	PhasePartOne = "part 1"
	PhasePartTwo = "part 2"
)

// InputSource returns a day's raw input. *input.Provider implements it.
type InputSource interface {
	Get(ctx context.Context, day puzzle.Day) (string, error)
}

// Result holds both answers of a day and the time spent in each phase.
type Result struct {
	Day     puzzle.Day
	Title   string
	PartOne puzzle.Answer
	PartTwo puzzle.Answer

	ParseTime   time.Duration
	PartOneTime time.Duration
	PartTwoTime time.Duration
}

// PhaseError records which phase of which day failed.
type PhaseError struct {
	Day   puzzle.Day
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Day, e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// Runner dispatches days through a registry.
type Runner struct {
	registry *puzzle.Registry
	inputs   InputSource
	out      io.Writer
	logger   *zap.Logger
	progress func(puzzle.Day)
}

func New(registry *puzzle.Registry, inputs InputSource, out io.Writer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{registry: registry, inputs: inputs, out: out, logger: logger}
}

// SetProgress registers fn to be called before each day of RunAll starts.
func (r *Runner) SetProgress(fn func(puzzle.Day)) {
	r.progress = fn
}

// Run solves day and prints the result. Nothing is printed unless every
// phase succeeds.
func (r *Runner) Run(ctx context.Context, day puzzle.Day) error {
	res, err := r.Solve(ctx, day)
	if err != nil {
		return err
	}
	return Format(r.out, res)
}

// RunAll runs every registered day in ascending order, stopping at the
// first failure.
func (r *Runner) RunAll(ctx context.Context) error {
	for _, day := range r.registry.Days() {
		if r.progress != nil {
			r.progress(day)
		}
		if err := r.Run(ctx, day); err != nil {
			return err
		}
	}
	return nil
}

// Solve looks up the module, obtains its input and times parse and both
// parts. An unknown day fails before any input is requested.
func (r *Runner) Solve(ctx context.Context, day puzzle.Day) (*Result, error) {
	m, err := r.registry.Lookup(day)
	if err != nil {
		return nil, err
	}
	log := r.logger.With(zap.Int("day", int(day)))

	text, err := r.inputs.Get(ctx, day)
	if err != nil {
		return nil, &PhaseError{Day: day, Phase: PhaseFetch, Err: err}
	}
	log.Debug("Input ready", zap.Int("bytes", len(text)))

	res := &Result{Day: day, Title: m.Title()}

	start := time.Now()
	state, err := m.Parse(text)
	res.ParseTime = time.Since(start)
	if err != nil {
		return nil, &PhaseError{Day: day, Phase: PhaseParse, Err: err}
	}
	log.Debug("Parsed input", zap.Duration("elapsed", res.ParseTime), zap.String("state", fmt.Sprintf("%T", state)))

	start = time.Now()
	res.PartOne, err = m.PartOne(state)
	res.PartOneTime = time.Since(start)
	if err != nil {
		return nil, &PhaseError{Day: day, Phase: PhasePartOne, Err: err}
	}
	log.Debug("Solved part 1", zap.Duration("elapsed", res.PartOneTime))

	start = time.Now()
	res.PartTwo, err = m.PartTwo(state)
	res.PartTwoTime = time.Since(start)
	if err != nil {
		return nil, &PhaseError{Day: day, Phase: PhasePartTwo, Err: err}
	}
	log.Debug("Solved part 2", zap.Duration("elapsed", res.PartTwoTime))

	return res, nil
}

// Format writes a result in the fixed report layout:
//
//	Day 1 result (Historian Hysteria):
//	  parse:  12.3µs
//	  part 1: 11 (45.6µs)
//	  part 2: 31 (7.8µs)
func Format(w io.Writer, res *Result) error {
	header := fmt.Sprintf("%s result", res.Day)
	if res.Title != "" {
		header = fmt.Sprintf("%s (%s)", header, res.Title)
	}
	_, err := fmt.Fprintf(w, "%s:\n  parse:  %s\n  part 1: %s (%s)\n  part 2: %s (%s)\n",
		header,
		Round(res.ParseTime),
		res.PartOne, Round(res.PartOneTime),
		res.PartTwo, Round(res.PartTwoTime),
	)
	if err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// Round trims a duration to 100ns for display.
func Round(d time.Duration) time.Duration {
	return d.Round(100 * time.Nanosecond)
}
