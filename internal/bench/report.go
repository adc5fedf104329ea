package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// WriteReport writes reports as a fixed-width table, one row per phase.
func WriteReport(w io.Writer, reports []Report) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(w, "No days benchmarked")
		return err
	}

	row := "%-6s %-7s %12s %12s %12s %12s %12s %9s\n"
	fmt.Fprintf(w, row, "DAY", "PHASE", "MEAN", "STDDEV", "MEDIAN", "MIN", "MAX", "OUTLIERS")
	fmt.Fprintf(w, row, "------", "-------", "------------", "------------", "------------", "------------", "------------", "---------")

	for _, r := range reports {
		for i, p := range r.Phases {
			label := ""
			if i == 0 {
				label = fmt.Sprintf("%d", int(r.Day))
			}
			s := p.Stats
			_, err := fmt.Fprintf(w, row,
				label, p.Phase,
				formatDuration(s.Mean), formatDuration(s.StdDev), formatDuration(s.Median),
				formatDuration(s.Min), formatDuration(s.Max),
				fmt.Sprintf("%d/%d", s.Outliers.Total(), s.Samples))
			if err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
		}
	}

	countMsg := "day"
	if len(reports) != 1 {
		countMsg = "days"
	}
	_, err := fmt.Fprintf(w, "\n%d %s benchmarked\n", len(reports), countMsg)
	return err
}

// WriteJSONL writes one JSON object per report per line.
func WriteJSONL(w io.Writer, reports []Report) error {
	for _, r := range reports {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal report to JSON: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}
	return nil
}

func formatDuration(d time.Duration) string {
	return d.Round(100 * time.Nanosecond).String()
}
