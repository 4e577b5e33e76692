// Package harvest implements the incremental pipelines. Each run reads a watermark from the store,
// plans what to fetch next, fetches it and stores new records with duplicate suppression.
// All writes of a run happen in a single transaction.
package harvest

import (
	"context"
	"io"
	"time"

	"github.com/umputun/skyharvest/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher

// DefaultMaxItems limits how many new records a single run may create
const DefaultMaxItems = 25

// Store is the persistence used by pipelines
type Store interface {
	// InTransaction calls fn with a store bound to a single transaction
	InTransaction(ctx context.Context, fn func(tx Store) error) error

	LastPictureDate(ctx context.Context) (time.Time, error)
	AddPicture(ctx context.Context, pic *domain.Picture) (bool, error)

	LastApproachDate(ctx context.Context) (time.Time, error)
	FindOrCreateAsteroid(ctx context.Context, ast *domain.Asteroid) (bool, error)
	AddApproach(ctx context.Context, appr *domain.Approach) (bool, error)

	Totals(ctx context.Context) (domain.Totals, error)
}

// Fetcher retrieves data from the upstream feeds.
// Errors matching domain.ErrNoData mean the unit has no data, any other error is fatal for the run.
type Fetcher interface {
	FetchPicture(ctx context.Context, day time.Time) (*domain.Picture, error)
	FetchFeed(ctx context.Context, rng domain.DateRange) (*domain.NeoFeed, error)
}

// Params holds dependencies and settings shared by both pipelines
type Params struct {
	Store    Store
	Fetcher  Fetcher
	Planner  *Planner
	MaxItems int       // cap on new records per run, DefaultMaxItems if zero
	Out      io.Writer // progress output, discarded if nil
}

func (p Params) withDefaults() Params {
	if p.MaxItems <= 0 {
		p.MaxItems = DefaultMaxItems
	}
	if p.Out == nil {
		p.Out = io.Discard
	}
	if p.Planner == nil {
		p.Planner = NewPlanner(PlannerConfig{})
	}
	return p
}
