package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/skyharvest/pkg/domain"
)

func TestAsteroidRepository_FindOrCreateAsteroid(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	ast := &domain.Asteroid{
		NeoID:             "2465633",
		Name:              "465633 (2009 JR5)",
		AbsoluteMagnitude: 20.44,
		DiameterMinKm:     0.2170475943,
		DiameterMaxKm:     0.4853331752,
		Hazardous:         true,
	}
	created, err := repos.Asteroid.FindOrCreateAsteroid(ctx, ast)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotZero(t, ast.ID)

	stored, err := repos.Asteroid.GetAsteroid(ctx, "2465633")
	require.NoError(t, err)
	assert.Equal(t, ast.ID, stored.ID)
	assert.Equal(t, "465633 (2009 JR5)", stored.Name)
	assert.InDelta(t, 20.44, stored.AbsoluteMagnitude, 0.0001)
	assert.InDelta(t, 0.4853331752, stored.DiameterMaxKm, 0.0001)
	assert.True(t, stored.Hazardous)

	t.Run("second sighting resolves existing row", func(t *testing.T) {
		again := &domain.Asteroid{NeoID: "2465633", Name: "renamed", AbsoluteMagnitude: 1}
		created, err := repos.Asteroid.FindOrCreateAsteroid(ctx, again)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, ast.ID, again.ID)

		stored, err := repos.Asteroid.GetAsteroid(ctx, "2465633")
		require.NoError(t, err)
		assert.Equal(t, "465633 (2009 JR5)", stored.Name, "existing row is not modified")

		count, err := repos.Asteroid.CountAsteroids(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("empty neo id rejected", func(t *testing.T) {
		_, err := repos.Asteroid.FindOrCreateAsteroid(ctx, &domain.Asteroid{Name: "nameless"})
		require.Error(t, err)
	})
}

func TestAsteroidRepository_AddApproach(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	ast := &domain.Asteroid{NeoID: "3542519", Name: "(2010 PK9)"}
	_, err := repos.Asteroid.FindOrCreateAsteroid(ctx, ast)
	require.NoError(t, err)

	appr := &domain.Approach{
		AsteroidID:     ast.ID,
		Date:           day("2024-01-02"),
		MissDistanceKm: 4850000.5,
		VelocityKmh:    65000.25,
		OrbitingBody:   "Earth",
	}
	added, err := repos.Asteroid.AddApproach(ctx, appr)
	require.NoError(t, err)
	assert.True(t, added)
	assert.NotZero(t, appr.ID)

	t.Run("same asteroid and date is skipped", func(t *testing.T) {
		dup := &domain.Approach{AsteroidID: ast.ID, Date: day("2024-01-02"), OrbitingBody: "Mars"}
		added, err := repos.Asteroid.AddApproach(ctx, dup)
		require.NoError(t, err)
		assert.False(t, added)
	})

	t.Run("same asteroid on another date is added", func(t *testing.T) {
		added, err := repos.Asteroid.AddApproach(ctx, &domain.Approach{AsteroidID: ast.ID, Date: day("2024-01-05"), OrbitingBody: "Earth"})
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("another asteroid on the same date is added", func(t *testing.T) {
		other := &domain.Asteroid{NeoID: "54016", Name: "other"}
		_, err := repos.Asteroid.FindOrCreateAsteroid(ctx, other)
		require.NoError(t, err)
		added, err := repos.Asteroid.AddApproach(ctx, &domain.Approach{AsteroidID: other.ID, Date: day("2024-01-02")})
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("unresolved asteroid rejected", func(t *testing.T) {
		_, err := repos.Asteroid.AddApproach(ctx, &domain.Approach{Date: day("2024-01-02")})
		require.Error(t, err)
	})

	t.Run("unknown asteroid violates foreign key", func(t *testing.T) {
		_, err := repos.Asteroid.AddApproach(ctx, &domain.Approach{AsteroidID: 9999, Date: day("2024-01-02")})
		require.Error(t, err)
	})

	appros, err := repos.Asteroid.GetApproaches(ctx, ast.ID)
	require.NoError(t, err)
	require.Len(t, appros, 2)
	assert.Equal(t, day("2024-01-02"), appros[0].Date)
	assert.Equal(t, "Earth", appros[0].OrbitingBody)
	assert.InDelta(t, 4850000.5, appros[0].MissDistanceKm, 0.001)
	assert.Equal(t, day("2024-01-05"), appros[1].Date)

	total, err := repos.Asteroid.CountApproaches(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	counts, err := repos.Asteroid.ApproachCountsByDate(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2024-01-02": 2, "2024-01-05": 1}, counts)
}

func TestAsteroidRepository_LastApproachDate(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	last, err := repos.Asteroid.LastApproachDate(ctx)
	require.NoError(t, err)
	assert.True(t, last.IsZero())

	ast := &domain.Asteroid{NeoID: "1", Name: "one"}
	_, err = repos.Asteroid.FindOrCreateAsteroid(ctx, ast)
	require.NoError(t, err)
	for _, d := range []string{"2024-01-03", "2024-01-07", "2024-01-04"} {
		_, err := repos.Asteroid.AddApproach(ctx, &domain.Approach{AsteroidID: ast.ID, Date: day(d)})
		require.NoError(t, err)
	}

	last, err = repos.Asteroid.LastApproachDate(ctx)
	require.NoError(t, err)
	assert.Equal(t, day("2024-01-07"), last)

	totals, err := repos.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Totals{Pictures: 0, Asteroids: 1, Approaches: 3}, totals)
}
