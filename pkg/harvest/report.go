package harvest

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/umputun/skyharvest/pkg/domain"
)

const rule = "=================================================="

// Header prints the banner shown before a pipeline runs
func Header(w io.Writer, p domain.Pipeline) {
	title := map[domain.Pipeline]string{
		domain.PipelineAPOD: "APOD Data Collection",
		domain.PipelineNEO:  "NeoWs Data Collection",
	}[p]
	fmt.Fprintf(w, "%s\n%s\n%s\n", rule, title, rule)
}

// Report prints the summary of a finished run: items added and the new totals
func Report(w io.Writer, res domain.RunResult) {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()

	switch res.Pipeline {
	case domain.PipelineAPOD:
		fmt.Fprintf(w, "\n%s added %d APOD %s\n", ok("✓"), res.Added, plural(res.Added, "entry", "entries"))
		if res.Skipped > 0 || len(res.Failed) > 0 {
			fmt.Fprintf(w, "Skipped %d duplicates, no data for %d %s\n", res.Skipped, len(res.Failed), plural(len(res.Failed), "day", "days"))
		}
		fmt.Fprintf(w, "Total APOD entries in database: %d\n", res.Totals.Pictures)
	case domain.PipelineNEO:
		if res.Aborted {
			fmt.Fprintf(w, "%s failed to fetch data for %s\n", bad("✗"), strings.Join(res.Failed, ", "))
			break
		}
		fmt.Fprintf(w, "%s added %d %s to database\n", ok("✓"), res.Added, plural(res.Added, "item", "items"))
		fmt.Fprintf(w, "New approaches stored: %d\n", res.Approaches)
		fmt.Fprintf(w, "Total asteroids in database: %d\n", res.Totals.Asteroids)
		fmt.Fprintf(w, "Total approaches in database: %d\n", res.Totals.Approaches)
	}

	if !res.UpToDate && !res.Aborted {
		fmt.Fprintln(w, "\nRun again to fetch more data!")
	}
	fmt.Fprintln(w, rule)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
