package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dyluth/advent/internal/printer"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List registered days and whether their input is cached",
	Args:  cobra.NoArgs,
	RunE:  runDays,
}

func init() {
	rootCmd.AddCommand(daysCmd)
}

func runDays(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	provider, release, err := env.provider(ctx)
	if err != nil {
		return err
	}
	defer release()

	out := printer.Stdout()
	fmt.Fprintf(out, "%-4s %-32s %s\n", "DAY", "TITLE", "INPUT")
	fmt.Fprintf(out, "%-4s %-32s %s\n", "----", "--------------------------------", "------")

	cached := 0
	for _, day := range registry.Days() {
		m, err := registry.Lookup(day)
		if err != nil {
			return err
		}
		ok, err := provider.Cached(ctx, day)
		if err != nil {
			return err
		}
		status := "-"
		if ok {
			status = "cached"
			cached++
		}
		fmt.Fprintf(out, "%-4d %-32s %s\n", int(day), m.Title(), status)
	}

	fmt.Fprintf(out, "\n%d of %d inputs cached (%d %s)\n", cached, registry.Len(), env.config.Year, env.config.Cache.Backend)
	return nil
}
