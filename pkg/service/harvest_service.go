package service

import (
	"context"
	"time"

	"github.com/umputun/skyharvest/pkg/domain"
	"github.com/umputun/skyharvest/pkg/harvest"
	"github.com/umputun/skyharvest/pkg/repository"
)

// HarvestService provides unified access to repositories for the harvest pipelines
type HarvestService struct {
	repos *repository.Repositories
}

// NewHarvestService creates a new harvest service
func NewHarvestService(repos *repository.Repositories) *HarvestService {
	return &HarvestService{repos: repos}
}

// InTransaction runs fn with a service bound to a single transaction
func (s *HarvestService) InTransaction(ctx context.Context, fn func(tx harvest.Store) error) error {
	return s.repos.InTransaction(ctx, func(tx *repository.Repositories) error {
		return fn(NewHarvestService(tx))
	})
}

// Picture methods

func (s *HarvestService) LastPictureDate(ctx context.Context) (time.Time, error) {
	return s.repos.Picture.LastPictureDate(ctx)
}

func (s *HarvestService) AddPicture(ctx context.Context, pic *domain.Picture) (bool, error) {
	return s.repos.Picture.AddPicture(ctx, pic)
}

// Asteroid methods

func (s *HarvestService) LastApproachDate(ctx context.Context) (time.Time, error) {
	return s.repos.Asteroid.LastApproachDate(ctx)
}

func (s *HarvestService) FindOrCreateAsteroid(ctx context.Context, ast *domain.Asteroid) (bool, error) {
	return s.repos.Asteroid.FindOrCreateAsteroid(ctx, ast)
}

func (s *HarvestService) AddApproach(ctx context.Context, appr *domain.Approach) (bool, error) {
	return s.repos.Asteroid.AddApproach(ctx, appr)
}

// Totals returns row counts of all harvested tables
func (s *HarvestService) Totals(ctx context.Context) (domain.Totals, error) {
	return s.repos.Totals(ctx)
}
