package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dyluth/advent/internal/days"
	"github.com/dyluth/advent/pkg/puzzle"
)

var (
	version string
	commit  string
	date    string
)

// Global flags shared by advent and the dayN binaries.
var (
	cfgFile  string
	verbose  bool
	inputDir string
	year     int
)

// registry is the static day table, built once per process.
var registry = days.Registry()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "advent [day]",
	Short: "Advent of Code 2024 puzzle runner",
	Long: `advent solves Advent of Code puzzles and reports both answers with
per-phase timings.

Inputs are read from the input cache (input/dayN.in by default) and downloaded
from adventofcode.com on a miss when a session cookie is configured through
AOC_SESSION or session_file in advent.yml.

Examples:
  # Solve day 7
  advent 7

  # Solve every registered day
  advent run --all

  # Warm the cache, then benchmark
  advent fetch 1 2 3
  advent bench 1 2 3 --samples 50`,
	Args: cobra.MaximumNArgs(1),
	// Strict flag parsing: "advent --al" must not silently show help.
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
	PersistentPreRunE:  setup,
	PersistentPostRun:  teardown,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		day, err := parseDay(args[0])
		if err != nil {
			return err
		}
		return solve(cmd.Context(), []puzzle.Day{day})
	},
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	return execute(rootCmd)
}

// ExecuteDay runs a single hardwired day, as the dayN binaries do.
func ExecuteDay(day puzzle.Day) int {
	return execute(newDayCommand(day))
}

func execute(cmd *cobra.Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.ExecuteContext(ctx); err != nil {
		return ExitCode(report(err))
	}
	return 0
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func newDayCommand(day puzzle.Day) *cobra.Command {
	cmd := &cobra.Command{
		Use:                fmt.Sprintf("day%d", int(day)),
		Short:              fmt.Sprintf("Solve Advent of Code 2024 day %d", int(day)),
		Args:               cobra.NoArgs,
		Version:            rootCmd.Version,
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
		PersistentPreRunE:  setup,
		PersistentPostRun:  teardown,
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd.Context(), []puzzle.Day{day})
		},
	}
	addGlobalFlags(cmd)
	return cmd
}

func addGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default ./advent.yml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&inputDir, "input-dir", "", "Input cache directory (overrides input_dir)")
	flags.IntVar(&year, "year", 0, "Event year (overrides year)")
}

func init() {
	addGlobalFlags(rootCmd)
}
