// Package bench measures parse and solve times of puzzle days with
// statistical summaries, and checks that repeated calls agree.
package bench

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dyluth/advent/pkg/puzzle"
)

const (
	DefaultSamples     = 20
	DefaultWarmup      = 500 * time.Millisecond
	DefaultMeasurement = 2 * time.Second
	DefaultPrefetch    = 4
)

// InputSource returns a day's raw input. *input.Provider implements it.
type InputSource interface {
	Get(ctx context.Context, day puzzle.Day) (string, error)
}

// Config controls sampling. Zero values select the defaults.
type Config struct {
	Samples     int
	Warmup      time.Duration
	Measurement time.Duration
	// Prefetch bounds concurrent input loads before timing starts.
	Prefetch int
}

func (c Config) withDefaults() Config {
	if c.Samples <= 0 {
		c.Samples = DefaultSamples
	}
	if c.Warmup <= 0 {
		c.Warmup = DefaultWarmup
	}
	if c.Measurement <= 0 {
		c.Measurement = DefaultMeasurement
	}
	if c.Prefetch <= 0 {
		c.Prefetch = DefaultPrefetch
	}
	return c
}

// Phase names, matching the runner's output.
const (
	PhaseParse   = "parse"
	PhasePartOne = "part 1"
	PhasePartTwo = "part 2"
)

// PhaseStats is the measurement of one phase of one day.
type PhaseStats struct {
	Phase string `json:"phase"`
	// Iterations is the number of calls timed together in each sample.
	Iterations int   `json:"iterations"`
	Stats      Stats `json:"stats"`
}

// Report is the benchmark result of one day.
type Report struct {
	Day     puzzle.Day    `json:"day"`
	Title   string        `json:"title"`
	PartOne puzzle.Answer `json:"part_one"`
	PartTwo puzzle.Answer `json:"part_two"`
	Phases  []PhaseStats  `json:"phases"`
}

// LeakError reports a part whose answer changed between calls on the same
// parsed input, meaning state survives from one call to the next.
type LeakError struct {
	Day       puzzle.Day
	Part      int
	Iteration int
	Want      puzzle.Answer
	Got       puzzle.Answer
}

func (e *LeakError) Error() string {
	return fmt.Sprintf("%s part %d: answer changed on call %d: got %q, want %q",
		e.Day, e.Part, e.Iteration, e.Got, e.Want)
}

// Harness benchmarks days from a registry.
type Harness struct {
	registry *puzzle.Registry
	inputs   InputSource
	cfg      Config
	logger   *zap.Logger
	progress func(puzzle.Day)
}

func New(registry *puzzle.Registry, inputs InputSource, cfg Config, logger *zap.Logger) *Harness {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Harness{registry: registry, inputs: inputs, cfg: cfg.withDefaults(), logger: logger}
}

// SetProgress registers fn to be called before each day's timing starts.
func (h *Harness) SetProgress(fn func(puzzle.Day)) {
	h.progress = fn
}

// Run benchmarks the given days, or every registered day when none are
// given. Inputs are loaded concurrently up front; timing is sequential.
func (h *Harness) Run(ctx context.Context, days []puzzle.Day) ([]Report, error) {
	if len(days) == 0 {
		days = h.registry.Days()
	}
	modules := make([]puzzle.Module, len(days))
	for i, day := range days {
		m, err := h.registry.Lookup(day)
		if err != nil {
			return nil, err
		}
		modules[i] = m
	}

	texts := make([]string, len(days))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.cfg.Prefetch)
	for i, day := range days {
		g.Go(func() error {
			text, err := h.inputs.Get(gctx, day)
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(days))
	for i, m := range modules {
		if h.progress != nil {
			h.progress(m.Day())
		}
		h.logger.Info("Benchmarking", zap.Int("day", int(m.Day())), zap.String("title", m.Title()))
		report, err := h.Day(ctx, m, texts[i])
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// Day benchmarks one module on its input.
func (h *Harness) Day(ctx context.Context, m puzzle.Module, text string) (Report, error) {
	state, err := m.Parse(text)
	if err != nil {
		return Report{}, err
	}
	report := Report{Day: m.Day(), Title: m.Title()}
	if report.PartOne, err = m.PartOne(state); err != nil {
		return Report{}, err
	}
	if report.PartTwo, err = m.PartTwo(state); err != nil {
		return Report{}, err
	}

	parse, err := h.measure(ctx, PhaseParse, func(int) error {
		_, err := m.Parse(text)
		return err
	})
	if err != nil {
		return Report{}, err
	}
	one, err := h.measure(ctx, PhasePartOne, h.checked(m, 1, state, m.PartOne, report.PartOne))
	if err != nil {
		return Report{}, err
	}
	two, err := h.measure(ctx, PhasePartTwo, h.checked(m, 2, state, m.PartTwo, report.PartTwo))
	if err != nil {
		return Report{}, err
	}
	report.Phases = []PhaseStats{parse, one, two}
	return report, nil
}

// checked wraps a part so every call is compared with the reference answer.
func (h *Harness) checked(m puzzle.Module, part int, state puzzle.Parsed,
	solve func(puzzle.Parsed) (puzzle.Answer, error), want puzzle.Answer) func(int) error {
	return func(call int) error {
		got, err := solve(state)
		if err != nil {
			return err
		}
		if got != want {
			return &LeakError{Day: m.Day(), Part: part, Iteration: call, Want: want, Got: got}
		}
		return nil
	}
}

// measure warms fn up, sizes samples so each lasts about
// Measurement/Samples, then collects Samples per-iteration times.
func (h *Harness) measure(ctx context.Context, phase string, fn func(call int) error) (PhaseStats, error) {
	call := 0
	start := time.Now()
	for time.Since(start) < h.cfg.Warmup || call == 0 {
		if err := ctx.Err(); err != nil {
			return PhaseStats{}, err
		}
		call++
		if err := fn(call); err != nil {
			return PhaseStats{}, err
		}
	}
	perCall := time.Since(start) / time.Duration(call)
	iterations := int(h.cfg.Measurement / time.Duration(h.cfg.Samples) / max(perCall, 1))
	iterations = max(iterations, 1)

	samples := make([]float64, h.cfg.Samples)
	for i := range samples {
		if err := ctx.Err(); err != nil {
			return PhaseStats{}, err
		}
		sampleStart := time.Now()
		for range iterations {
			call++
			if err := fn(call); err != nil {
				return PhaseStats{}, err
			}
		}
		samples[i] = float64(time.Since(sampleStart).Nanoseconds()) / float64(iterations)
	}

	stats := Summarize(samples)
	h.logger.Debug("Measured phase",
		zap.String("phase", phase),
		zap.Int("iterations", iterations),
		zap.Duration("mean", stats.Mean),
		zap.Int("outliers", stats.Outliers.Total()))
	return PhaseStats{Phase: phase, Iterations: iterations, Stats: stats}, nil
}
