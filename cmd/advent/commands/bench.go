package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dyluth/advent/internal/bench"
	"github.com/dyluth/advent/internal/printer"
	"github.com/dyluth/advent/pkg/puzzle"
)

var (
	benchSamples     int
	benchWarmup      time.Duration
	benchMeasurement time.Duration
	benchOutput      string
)

var benchCmd = &cobra.Command{
	Use:   "bench [day...]",
	Short: "Benchmark parse and both parts of each day",
	Long: `Benchmark days on their cached input. With no days, every registered
day is benchmarked.

Each phase is warmed up, then timed over a number of samples whose
iteration count is calibrated so the whole phase takes about the
measurement time. Answers are checked on every iteration; a solver whose
answer changes between iterations fails the benchmark.

Output Formats:
  default - Human-readable table, one row per phase
  jsonl   - Line-delimited JSON, one report per day

Examples:
  advent bench
  advent bench 1 11 --samples 50 --measurement 5s
  advent bench --output=jsonl | jq '.phases[] | .stats.mean'`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchSamples, "samples", 0, "Samples per phase (overrides bench.samples)")
	benchCmd.Flags().DurationVar(&benchWarmup, "warmup", 0, "Warm-up time per phase (overrides bench.warmup)")
	benchCmd.Flags().DurationVar(&benchMeasurement, "measurement", 0, "Measurement time per phase (overrides bench.measurement)")
	benchCmd.Flags().StringVarP(&benchOutput, "output", "o", "default", "Output format: default or jsonl")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	write := bench.WriteReport
	switch benchOutput {
	case "default":
	case "jsonl":
		write = bench.WriteJSONL
	default:
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", benchOutput),
			[]string{"Valid formats: default, jsonl"},
		)
	}

	selected, err := parseDays(args)
	if err != nil {
		return err
	}

	cfg := bench.Config{
		Samples:     env.config.Bench.Samples,
		Warmup:      env.config.Bench.Warmup,
		Measurement: env.config.Bench.Measurement,
		Prefetch:    env.config.Bench.Prefetch,
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = benchSamples
	}
	if cmd.Flags().Changed("warmup") {
		cfg.Warmup = benchWarmup
	}
	if cmd.Flags().Changed("measurement") {
		cfg.Measurement = benchMeasurement
	}
	if cfg.Samples < 2 || cfg.Warmup < 0 || cfg.Measurement <= 0 {
		return printer.Error("invalid benchmark settings",
			fmt.Sprintf("samples=%d warmup=%s measurement=%s", cfg.Samples, cfg.Warmup, cfg.Measurement),
			[]string{"Use at least 2 samples and a positive measurement time"})
	}

	provider, release, err := env.provider(ctx)
	if err != nil {
		return err
	}
	defer release()

	harness := bench.New(registry, provider, cfg, env.logger)
	harness.SetProgress(func(day puzzle.Day) {
		printer.Step("Benchmarking %s\n", day)
	})
	reports, err := harness.Run(ctx, selected)
	if err != nil {
		return err
	}
	return write(printer.Stdout(), reports)
}
