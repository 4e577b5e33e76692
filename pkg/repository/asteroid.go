package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/skyharvest/pkg/db"
	"github.com/umputun/skyharvest/pkg/domain"
)

// AsteroidRepository handles near-earth objects and their close approaches
type AsteroidRepository struct {
	db executor
}

// NewAsteroidRepository creates a new asteroid repository
func NewAsteroidRepository(db executor) *AsteroidRepository {
	return &AsteroidRepository{db: db}
}

// FindOrCreateAsteroid resolves the asteroid by its neo id, inserting it if absent.
// Sets ast.ID in both cases and returns true only if a new row was created.
// An existing row is never modified.
func (r *AsteroidRepository) FindOrCreateAsteroid(ctx context.Context, ast *domain.Asteroid) (bool, error) {
	if ast.NeoID == "" {
		return false, fmt.Errorf("find or create asteroid: empty neo id")
	}

	dbAst := &db.Asteroid{
		NeoID:             ast.NeoID,
		Name:              ast.Name,
		AbsoluteMagnitude: ast.AbsoluteMagnitude,
		DiameterMinKm:     ast.DiameterMinKm,
		DiameterMaxKm:     ast.DiameterMaxKm,
		Hazardous:         ast.Hazardous,
	}

	query := `
		INSERT INTO asteroids (neo_id, name, absolute_magnitude, diameter_min_km, diameter_max_km, is_hazardous)
		VALUES (:neo_id, :name, :absolute_magnitude, :diameter_min_km, :diameter_max_km, :is_hazardous)
		ON CONFLICT(neo_id) DO NOTHING
	`
	result, err := r.db.NamedExecContext(ctx, query, dbAst)
	if err != nil {
		return false, fmt.Errorf("insert asteroid %s: %w", ast.NeoID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected > 0 {
		id, err := result.LastInsertId()
		if err != nil {
			return false, fmt.Errorf("get insert id: %w", err)
		}
		ast.ID = id
		return true, nil
	}

	if err := r.db.GetContext(ctx, &ast.ID, "SELECT id FROM asteroids WHERE neo_id = ?", ast.NeoID); err != nil {
		return false, fmt.Errorf("get asteroid id %s: %w", ast.NeoID, err)
	}
	return false, nil
}

// AddApproach inserts a close approach for an already stored asteroid.
// Returns false if the asteroid already has an approach on that date.
func (r *AsteroidRepository) AddApproach(ctx context.Context, appr *domain.Approach) (bool, error) {
	if appr.AsteroidID == 0 {
		return false, fmt.Errorf("add approach: asteroid is not stored")
	}
	if appr.Date.IsZero() {
		return false, fmt.Errorf("add approach: empty date")
	}

	dbAppr := &db.Approach{
		AsteroidID:     appr.AsteroidID,
		ApproachDate:   appr.Date.Format(domain.DateLayout),
		MissDistanceKm: appr.MissDistanceKm,
		VelocityKmh:    appr.VelocityKmh,
		OrbitingBody:   appr.OrbitingBody,
	}

	query := `
		INSERT INTO approaches (asteroid_id, approach_date, miss_distance_km, velocity_kmh, orbiting_body)
		VALUES (:asteroid_id, :approach_date, :miss_distance_km, :velocity_kmh, :orbiting_body)
		ON CONFLICT(asteroid_id, approach_date) DO NOTHING
	`
	result, err := r.db.NamedExecContext(ctx, query, dbAppr)
	if err != nil {
		return false, fmt.Errorf("insert approach: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return false, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("get insert id: %w", err)
	}
	appr.ID = id
	return true, nil
}

// GetAsteroid retrieves an asteroid by its neo id, approaches are not loaded
func (r *AsteroidRepository) GetAsteroid(ctx context.Context, neoID string) (*domain.Asteroid, error) {
	var dbAst db.Asteroid
	if err := r.db.GetContext(ctx, &dbAst, "SELECT * FROM asteroids WHERE neo_id = ?", neoID); err != nil {
		return nil, fmt.Errorf("get asteroid: %w", err)
	}
	return &domain.Asteroid{
		ID:                dbAst.ID,
		NeoID:             dbAst.NeoID,
		Name:              dbAst.Name,
		AbsoluteMagnitude: dbAst.AbsoluteMagnitude,
		DiameterMinKm:     dbAst.DiameterMinKm,
		DiameterMaxKm:     dbAst.DiameterMaxKm,
		Hazardous:         dbAst.Hazardous,
		CreatedAt:         dbAst.CreatedAt,
	}, nil
}

// GetApproaches returns approaches of the asteroid ordered by date
func (r *AsteroidRepository) GetApproaches(ctx context.Context, asteroidID int64) ([]domain.Approach, error) {
	var dbApprs []db.Approach
	query := "SELECT * FROM approaches WHERE asteroid_id = ? ORDER BY approach_date"
	if err := r.db.SelectContext(ctx, &dbApprs, query, asteroidID); err != nil {
		return nil, fmt.Errorf("get approaches: %w", err)
	}

	res := make([]domain.Approach, 0, len(dbApprs))
	for _, a := range dbApprs {
		date, err := parseStoredDate(a.ApproachDate)
		if err != nil {
			return nil, err
		}
		res = append(res, domain.Approach{
			ID:             a.ID,
			AsteroidID:     a.AsteroidID,
			Date:           date,
			MissDistanceKm: a.MissDistanceKm,
			VelocityKmh:    a.VelocityKmh,
			OrbitingBody:   a.OrbitingBody,
		})
	}
	return res, nil
}

// LastApproachDate returns the latest stored approach date, zero time if there are no approaches.
// Approaches, not asteroids, define how far the feed has been harvested.
func (r *AsteroidRepository) LastApproachDate(ctx context.Context) (time.Time, error) {
	var lastDate string
	if err := r.db.GetContext(ctx, &lastDate, "SELECT COALESCE(MAX(approach_date), '') FROM approaches"); err != nil {
		return time.Time{}, fmt.Errorf("get last approach date: %w", err)
	}
	return parseStoredDate(lastDate)
}

// ApproachCountsByDate returns number of stored approaches per approach date
func (r *AsteroidRepository) ApproachCountsByDate(ctx context.Context) (map[string]int, error) {
	var rows []db.DateCount
	query := `
		SELECT approach_date AS date, COUNT(*) AS cnt
		FROM approaches
		GROUP BY approach_date
		ORDER BY approach_date
	`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("count approaches by date: %w", err)
	}

	res := make(map[string]int, len(rows))
	for _, row := range rows {
		res[row.Date] = row.Count
	}
	return res, nil
}

// CountAsteroids returns total number of stored asteroids
func (r *AsteroidRepository) CountAsteroids(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM asteroids"); err != nil {
		return 0, fmt.Errorf("count asteroids: %w", err)
	}
	return count, nil
}

// CountApproaches returns total number of stored approaches
func (r *AsteroidRepository) CountApproaches(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM approaches"); err != nil {
		return 0, fmt.Errorf("count approaches: %w", err)
	}
	return count, nil
}
