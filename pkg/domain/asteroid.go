package domain

import "time"

// Asteroid represents a near-earth object, identified by its external NeoWs id
type Asteroid struct {
	ID                int64
	NeoID             string
	Name              string
	AbsoluteMagnitude float64
	DiameterMinKm     float64
	DiameterMaxKm     float64
	Hazardous         bool
	Approaches        []Approach // close approaches reported with the asteroid, not persisted with it
	CreatedAt         time.Time
}

// Approach represents a single close approach of an asteroid on a calendar date
type Approach struct {
	ID             int64
	AsteroidID     int64
	Date           time.Time
	MissDistanceKm float64
	VelocityKmh    float64
	OrbitingBody   string
}

// NeoBucket holds asteroids reported for one date of a feed window
type NeoBucket struct {
	Date      time.Time
	Asteroids []Asteroid
}

// NeoFeed is a decoded feed window, buckets sorted by ascending date
type NeoFeed struct {
	Range   DateRange
	Count   int
	Buckets []NeoBucket
}
