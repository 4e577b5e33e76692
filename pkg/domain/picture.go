package domain

import "time"

// DefaultCopyright is stored when the picture of the day carries no attribution
const DefaultCopyright = "Public Domain"

// MediaType represents the kind of resource a picture of the day points to
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Picture represents a single astronomy picture of the day, one per calendar date
type Picture struct {
	ID          int64
	Date        time.Time
	Title       string
	Explanation string
	URL         string
	MediaType   MediaType
	Copyright   string
	CreatedAt   time.Time
}
