package harvest

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/skyharvest/pkg/domain"
)

// NEO harvests near-earth objects and their close approaches, one feed window per run
type NEO struct {
	Params
}

// NewNEO makes the near-earth-object pipeline
func NewNEO(params Params) *NEO {
	return &NEO{Params: params.withDefaults()}
}

// Run fetches the single window following the latest stored approach and stores it.
// Only newly discovered asteroids count toward MaxItems, approaches are stored without limit
// for every asteroid processed. If the window fetch fails with domain.ErrNoData the run is
// aborted without changes.
func (n *NEO) Run(ctx context.Context) (domain.RunResult, error) {
	res := domain.RunResult{Pipeline: domain.PipelineNEO}

	err := n.Store.InTransaction(ctx, func(tx Store) error {
		last, err := tx.LastApproachDate(ctx)
		if err != nil {
			return fmt.Errorf("read approach watermark: %w", err)
		}
		start, cold := n.Planner.Start(last)
		res.Watermark, res.ColdStart = last, cold

		if cold {
			fmt.Fprintf(n.Out, "First run - starting from %s\n", start.Format(domain.DateLayout))
		} else {
			fmt.Fprintf(n.Out, "Last fetch date: %s\n", last.Format(domain.DateLayout))
		}

		rng, ok := n.Planner.Window(start)
		res.Range = rng
		if !ok {
			res.UpToDate = true
			fmt.Fprintf(n.Out, "Nothing to fetch, %s is in the future\n", start.Format(domain.DateLayout))
			return nil
		}
		fmt.Fprintf(n.Out, "Fetching data from %s to %s\n",
			rng.Start.Format(domain.DateLayout), rng.End.Format(domain.DateLayout))

		feed, err := n.Fetcher.FetchFeed(ctx, rng)
		if err != nil {
			if errors.Is(err, domain.ErrNoData) {
				res.Aborted = true
				res.Failed = append(res.Failed, rng.String())
				fmt.Fprintf(n.Out, "Error for %s: %v\n", rng, err)
				return nil
			}
			return fmt.Errorf("fetch feed %s: %w", rng, err)
		}
		return n.storeFeed(ctx, tx, feed, &res)
	})
	if err != nil {
		return res, fmt.Errorf("neo run: %w", err)
	}

	if res.Totals, err = n.Store.Totals(ctx); err != nil {
		return res, fmt.Errorf("neo totals: %w", err)
	}
	lgr.Printf("[INFO] neo run done, added %d asteroids and %d approaches", res.Added, res.Approaches)
	return res, nil
}

// storeFeed stores asteroids bucket by bucket. The cap is checked before each bucket and each
// asteroid, so approaches of the asteroid that reached the cap are still stored.
func (n *NEO) storeFeed(ctx context.Context, tx Store, feed *domain.NeoFeed, res *domain.RunResult) error {
	for _, bucket := range feed.Buckets {
		if res.Added >= n.MaxItems {
			break
		}
		for i := range bucket.Asteroids {
			if res.Added >= n.MaxItems {
				break
			}
			if err := n.storeAsteroid(ctx, tx, &bucket.Asteroids[i], res); err != nil {
				return err
			}
		}
	}
	return nil
}

func (n *NEO) storeAsteroid(ctx context.Context, tx Store, ast *domain.Asteroid, res *domain.RunResult) error {
	created, err := tx.FindOrCreateAsteroid(ctx, ast)
	if err != nil {
		return fmt.Errorf("store asteroid %s: %w", ast.NeoID, err)
	}
	if created {
		res.Added++
		lgr.Printf("[DEBUG] new asteroid %s (%s)", ast.NeoID, ast.Name)
	} else {
		res.Skipped++
	}

	for j := range ast.Approaches {
		appr := &ast.Approaches[j]
		appr.AsteroidID = ast.ID
		added, err := tx.AddApproach(ctx, appr)
		if err != nil {
			return fmt.Errorf("store approach of %s on %s: %w", ast.NeoID, appr.Date.Format(domain.DateLayout), err)
		}
		if added {
			res.Approaches++
		}
	}
	return nil
}
