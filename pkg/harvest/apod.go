package harvest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/skyharvest/pkg/domain"
)

// APOD harvests pictures of the day, one request per calendar day
type APOD struct {
	Params
}

// NewAPOD makes the picture-of-the-day pipeline
func NewAPOD(params Params) *APOD {
	return &APOD{Params: params.withDefaults()}
}

// Run walks forward from the day after the latest stored picture until MaxItems pictures
// are added or the current date is passed. A day that fails with domain.ErrNoData is skipped.
func (a *APOD) Run(ctx context.Context) (domain.RunResult, error) {
	res := domain.RunResult{Pipeline: domain.PipelineAPOD}

	err := a.Store.InTransaction(ctx, func(tx Store) error {
		last, err := tx.LastPictureDate(ctx)
		if err != nil {
			return fmt.Errorf("read picture watermark: %w", err)
		}
		start, cold := a.Planner.Start(last)
		res.Watermark, res.ColdStart = last, cold
		res.Range.Start = start

		if cold {
			fmt.Fprintf(a.Out, "First run - starting from %s\n", start.Format(domain.DateLayout))
		} else {
			fmt.Fprintf(a.Out, "Last fetch date: %s\n", last.Format(domain.DateLayout))
		}
		fmt.Fprintf(a.Out, "Fetching APOD data starting from %s\n", start.Format(domain.DateLayout))

		for day := start; res.Added < a.MaxItems; day = day.AddDate(0, 0, 1) {
			if a.Planner.Future(day) {
				res.UpToDate = true
				fmt.Fprintln(a.Out, "Reached current date - no more data available")
				break
			}
			res.Range.End = day
			if err := a.processDay(ctx, tx, day, &res); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("apod run: %w", err)
	}

	if res.Totals, err = a.Store.Totals(ctx); err != nil {
		return res, fmt.Errorf("apod totals: %w", err)
	}
	lgr.Printf("[INFO] apod run done, added %d, skipped %d, failed %d", res.Added, res.Skipped, len(res.Failed))
	return res, nil
}

// processDay fetches and stores a single day. Only transport and storage failures are returned.
func (a *APOD) processDay(ctx context.Context, tx Store, day time.Time, res *domain.RunResult) error {
	date := day.Format(domain.DateLayout)

	pic, err := a.Fetcher.FetchPicture(ctx, day)
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			res.Failed = append(res.Failed, date)
			fmt.Fprintf(a.Out, "Error for %s: %v\n", date, err)
			return nil
		}
		return fmt.Errorf("fetch picture %s: %w", date, err)
	}

	added, err := tx.AddPicture(ctx, pic)
	if err != nil {
		return fmt.Errorf("store picture %s: %w", date, err)
	}
	if !added {
		res.Skipped++
		lgr.Printf("[DEBUG] picture %s already stored", date)
		fmt.Fprintf(a.Out, "- Skipped: %s (duplicate)\n", date)
		return nil
	}

	res.Added++
	fmt.Fprintf(a.Out, "✓ Added: %s - %s\n", date, shorten(pic.Title, 50))
	return nil
}

// shorten cuts s to limit runes, adding ellipsis if anything was cut
func shorten(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
