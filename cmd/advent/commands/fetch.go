package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dyluth/advent/internal/printer"
)

var fetchAll bool

var fetchCmd = &cobra.Command{
	Use:   "fetch <day>...",
	Short: "Download inputs into the cache without solving",
	Long: `Warm the input cache. Days already cached are not downloaded again.

Downloads run with the same concurrency limit as benchmark prefetching
(bench.prefetch in advent.yml).

Examples:
  advent fetch 1 2 3
  advent fetch --all`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchAll, "all", false, "Fetch every registered day")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if fetchAll && len(args) > 0 {
		return printer.Error("conflicting arguments",
			fmt.Sprintf("--all fetches every day, but %d day(s) were also given", len(args)),
			[]string{"Drop the days to fetch everything", "Drop --all to fetch only the given days"})
	}

	selected, err := parseDays(args)
	if err != nil {
		return err
	}
	if fetchAll {
		selected = registry.Days()
	}
	if len(selected) == 0 {
		return printer.Error("no days given",
			"fetch needs at least one day.",
			[]string{"Run 'advent fetch 1 2 3'", "Run 'advent fetch --all'"})
	}

	provider, release, err := env.provider(ctx)
	if err != nil {
		return err
	}
	defer release()

	sizes := make([]int, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(env.config.Bench.Prefetch)
	for i, day := range selected {
		g.Go(func() error {
			text, err := provider.Get(gctx, day)
			if err != nil {
				return err
			}
			sizes[i] = len(text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, day := range selected {
		printer.Success("%s: %s\n", day, formatBytes(sizes[i]))
	}
	return nil
}

func formatBytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d bytes", n)
	}
	return fmt.Sprintf("%.1f KiB", float64(n)/1024)
}

