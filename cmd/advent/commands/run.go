package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dyluth/advent/internal/printer"
	"github.com/dyluth/advent/internal/runner"
	"github.com/dyluth/advent/pkg/puzzle"
)

var runAll bool

var runCmd = &cobra.Command{
	Use:   "run [day]",
	Short: "Solve one day, or every registered day with --all",
	Long: `Solve a day and print both answers with parse and part timings.

Output is only printed once every phase has succeeded. With --all, days run
in ascending order and the first failure stops the run.

Examples:
  advent run 7
  advent run day7
  advent run --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case runAll && len(args) > 0:
			return printer.Error("conflicting arguments",
				fmt.Sprintf("--all runs every day, but day %q was also given", args[0]),
				[]string{"Drop the day to run everything", "Drop --all to run one day"})
		case runAll:
			return solve(cmd.Context(), nil)
		case len(args) == 0:
			return printer.Error("no day given",
				"run needs the day to solve.",
				[]string{"Run 'advent run 7' for a single day", "Run 'advent run --all' for every day"})
		}
		day, err := parseDay(args[0])
		if err != nil {
			return err
		}
		return solve(cmd.Context(), []puzzle.Day{day})
	},
}

func init() {
	runCmd.Flags().BoolVar(&runAll, "all", false, "Run every registered day in order")
	rootCmd.AddCommand(runCmd)
}

// solve runs the given days, or all registered days when none are given.
func solve(ctx context.Context, selected []puzzle.Day) error {
	provider, release, err := env.provider(ctx)
	if err != nil {
		return err
	}
	defer release()

	r := runner.New(registry, provider, printer.Stdout(), env.logger)
	if len(selected) == 0 {
		r.SetProgress(func(day puzzle.Day) {
			printer.Step("Running %s\n", day)
		})
		return r.RunAll(ctx)
	}
	for _, day := range selected {
		if err := r.Run(ctx, day); err != nil {
			return err
		}
	}
	return nil
}

func parseDay(arg string) (puzzle.Day, error) {
	day, err := puzzle.ParseDay(arg)
	if err != nil {
		return 0, printer.Fail(err, "invalid day", err.Error(), nil,
			[]string{"Days are numbers from 1 to 25, for example 'advent 7'"})
	}
	return day, nil
}

func parseDays(args []string) ([]puzzle.Day, error) {
	selected := make([]puzzle.Day, 0, len(args))
	seen := make(map[puzzle.Day]bool, len(args))
	for _, arg := range args {
		day, err := parseDay(arg)
		if err != nil {
			return nil, err
		}
		if !seen[day] {
			seen[day] = true
			selected = append(selected, day)
		}
	}
	return selected, nil
}
