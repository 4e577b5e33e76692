package nasa

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/umputun/skyharvest/pkg/domain"
)

// feedResponse is the near-earth-object feed payload, asteroids grouped by date
type feedResponse struct {
	ElementCount     int                      `json:"element_count"`
	NearEarthObjects map[string][]neoResponse `json:"near_earth_objects"`
}

type neoResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	AbsoluteMagnitude float64 `json:"absolute_magnitude_h"`
	EstimatedDiameter struct {
		Kilometers struct {
			Min float64 `json:"estimated_diameter_min"`
			Max float64 `json:"estimated_diameter_max"`
		} `json:"kilometers"`
	} `json:"estimated_diameter"`
	Hazardous         bool               `json:"is_potentially_hazardous_asteroid"`
	CloseApproachData []approachResponse `json:"close_approach_data"`
}

type approachResponse struct {
	Date         string `json:"close_approach_date"`
	MissDistance struct {
		Kilometers number `json:"kilometers"`
	} `json:"miss_distance"`
	RelativeVelocity struct {
		KilometersPerHour number `json:"kilometers_per_hour"`
	} `json:"relative_velocity"`
	OrbitingBody string `json:"orbiting_body"`
}

// number accepts both JSON numbers and numeric strings, upstream sends distances as strings
type number float64

// UnmarshalJSON implements json.Unmarshaler
func (n *number) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("parse number %q: %w", string(data), err)
	}
	*n = number(v)
	return nil
}

// FetchFeed retrieves asteroids with close approaches within the inclusive date range.
// Buckets in the result are sorted by date.
func (c *Client) FetchFeed(ctx context.Context, rng domain.DateRange) (*domain.NeoFeed, error) {
	params := url.Values{}
	params.Set("start_date", rng.Start.Format(domain.DateLayout))
	params.Set("end_date", rng.End.Format(domain.DateLayout))

	var resp feedResponse
	if err := c.getJSON(ctx, c.feedURL, params, rng.String(), &resp); err != nil {
		return nil, err
	}

	feed := &domain.NeoFeed{Range: rng, Count: resp.ElementCount}
	for date, neos := range resp.NearEarthObjects {
		bucketDate, err := domain.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("feed %s: %w", rng, err)
		}
		bucket := domain.NeoBucket{Date: bucketDate, Asteroids: make([]domain.Asteroid, 0, len(neos))}
		for _, neo := range neos {
			ast, err := neo.toDomain()
			if err != nil {
				return nil, fmt.Errorf("feed %s: %w", rng, err)
			}
			bucket.Asteroids = append(bucket.Asteroids, ast)
		}
		feed.Buckets = append(feed.Buckets, bucket)
	}
	sort.Slice(feed.Buckets, func(i, j int) bool { return feed.Buckets[i].Date.Before(feed.Buckets[j].Date) })
	return feed, nil
}

func (n neoResponse) toDomain() (domain.Asteroid, error) {
	ast := domain.Asteroid{
		NeoID:             n.ID,
		Name:              n.Name,
		AbsoluteMagnitude: n.AbsoluteMagnitude,
		DiameterMinKm:     n.EstimatedDiameter.Kilometers.Min,
		DiameterMaxKm:     n.EstimatedDiameter.Kilometers.Max,
		Hazardous:         n.Hazardous,
		Approaches:        make([]domain.Approach, 0, len(n.CloseApproachData)),
	}
	for _, a := range n.CloseApproachData {
		date, err := domain.ParseDate(a.Date)
		if err != nil {
			return domain.Asteroid{}, fmt.Errorf("asteroid %s approach: %w", n.ID, err)
		}
		ast.Approaches = append(ast.Approaches, domain.Approach{
			Date:           date,
			MissDistanceKm: float64(a.MissDistance.Kilometers),
			VelocityKmh:    float64(a.RelativeVelocity.KilometersPerHour),
			OrbitingBody:   a.OrbitingBody,
		})
	}
	return ast, nil
}
