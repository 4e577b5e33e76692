package harvest_test

import (
	"context"
	"sort"
	"time"

	"github.com/umputun/skyharvest/pkg/domain"
	"github.com/umputun/skyharvest/pkg/harvest"
	"github.com/umputun/skyharvest/pkg/harvest/mocks"
)

func date(s string) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func planner(epoch, today string) *harvest.Planner {
	return harvest.NewPlanner(harvest.PlannerConfig{
		Epoch: date(epoch),
		Now:   func() time.Time { return date(today).Add(10 * time.Hour) },
	})
}

// memStore is a map backed store behind the generated mock, committed only if fn succeeds
type memStore struct {
	pictures   map[string]domain.Picture
	asteroids  map[string]int64
	approaches map[int64]map[string]domain.Approach
}

func newMemStore() *memStore {
	return &memStore{
		pictures:   map[string]domain.Picture{},
		asteroids:  map[string]int64{},
		approaches: map[int64]map[string]domain.Approach{},
	}
}

func (m *memStore) clone() *memStore {
	res := newMemStore()
	for k, v := range m.pictures {
		res.pictures[k] = v
	}
	for k, v := range m.asteroids {
		res.asteroids[k] = v
	}
	for id, appr := range m.approaches {
		res.approaches[id] = map[string]domain.Approach{}
		for k, v := range appr {
			res.approaches[id][k] = v
		}
	}
	return res
}

func (m *memStore) totals() domain.Totals {
	res := domain.Totals{Pictures: int64(len(m.pictures)), Asteroids: int64(len(m.asteroids))}
	for _, appr := range m.approaches {
		res.Approaches += int64(len(appr))
	}
	return res
}

func (m *memStore) pictureDates() []string {
	res := make([]string, 0, len(m.pictures))
	for k := range m.pictures {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// mock wires the generated mock to the map store
func (m *memStore) mock() *mocks.StoreMock {
	var st *mocks.StoreMock
	st = &mocks.StoreMock{
		InTransactionFunc: func(ctx context.Context, fn func(tx harvest.Store) error) error {
			snapshot := m.clone()
			if err := fn(st); err != nil {
				*m = *snapshot
				return err
			}
			return nil
		},
		LastPictureDateFunc: func(ctx context.Context) (time.Time, error) {
			dates := m.pictureDates()
			if len(dates) == 0 {
				return time.Time{}, nil
			}
			return date(dates[len(dates)-1]), nil
		},
		AddPictureFunc: func(ctx context.Context, pic *domain.Picture) (bool, error) {
			key := pic.Date.Format(domain.DateLayout)
			if _, ok := m.pictures[key]; ok {
				return false, nil
			}
			pic.ID = int64(len(m.pictures) + 1)
			m.pictures[key] = *pic
			return true, nil
		},
		LastApproachDateFunc: func(ctx context.Context) (time.Time, error) {
			var last time.Time
			for _, appr := range m.approaches {
				for _, a := range appr {
					if a.Date.After(last) {
						last = a.Date
					}
				}
			}
			return last, nil
		},
		FindOrCreateAsteroidFunc: func(ctx context.Context, ast *domain.Asteroid) (bool, error) {
			if id, ok := m.asteroids[ast.NeoID]; ok {
				ast.ID = id
				return false, nil
			}
			ast.ID = int64(len(m.asteroids) + 1)
			m.asteroids[ast.NeoID] = ast.ID
			return true, nil
		},
		AddApproachFunc: func(ctx context.Context, appr *domain.Approach) (bool, error) {
			if m.approaches[appr.AsteroidID] == nil {
				m.approaches[appr.AsteroidID] = map[string]domain.Approach{}
			}
			key := appr.Date.Format(domain.DateLayout)
			if _, ok := m.approaches[appr.AsteroidID][key]; ok {
				return false, nil
			}
			m.approaches[appr.AsteroidID][key] = *appr
			return true, nil
		},
		TotalsFunc: func(ctx context.Context) (domain.Totals, error) {
			return m.totals(), nil
		},
	}
	return st
}
