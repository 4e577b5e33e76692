package db

import "time"

// Picture represents a stored picture of the day
type Picture struct {
	ID          int64     `db:"id"`
	Date        string    `db:"date"`
	Title       string    `db:"title"`
	Explanation string    `db:"explanation"`
	URL         string    `db:"url"`
	MediaType   string    `db:"media_type"`
	Copyright   string    `db:"copyright"`
	CreatedAt   time.Time `db:"created_at"`
}

// Asteroid represents a stored near-earth object
type Asteroid struct {
	ID                int64     `db:"id"`
	NeoID             string    `db:"neo_id"`
	Name              string    `db:"name"`
	AbsoluteMagnitude float64   `db:"absolute_magnitude"`
	DiameterMinKm     float64   `db:"diameter_min_km"`
	DiameterMaxKm     float64   `db:"diameter_max_km"`
	Hazardous         bool      `db:"is_hazardous"`
	CreatedAt         time.Time `db:"created_at"`
}

// Approach represents a stored close approach, owned by an asteroid
type Approach struct {
	ID             int64   `db:"id"`
	AsteroidID     int64   `db:"asteroid_id"`
	ApproachDate   string  `db:"approach_date"`
	MissDistanceKm float64 `db:"miss_distance_km"`
	VelocityKmh    float64 `db:"velocity_kmh"`
	OrbitingBody   string  `db:"orbiting_body"`
}

// DateCount is a per-date aggregate row
type DateCount struct {
	Date  string `db:"date"`
	Count int    `db:"cnt"`
}
