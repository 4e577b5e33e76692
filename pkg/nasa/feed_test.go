package nasa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/skyharvest/pkg/domain"
)

const feedPayload = `{
	"element_count": 3,
	"near_earth_objects": {
		"2024-01-03": [
			{
				"id": "3542519",
				"name": "(2010 PK9)",
				"absolute_magnitude_h": 21.3,
				"estimated_diameter": {"kilometers": {"estimated_diameter_min": 0.14, "estimated_diameter_max": 0.31}},
				"is_potentially_hazardous_asteroid": false,
				"close_approach_data": [
					{
						"close_approach_date": "2024-01-03",
						"relative_velocity": {"kilometers_per_hour": "65432.1"},
						"miss_distance": {"kilometers": "4850000.5"},
						"orbiting_body": "Earth"
					}
				]
			}
		],
		"2024-01-01": [
			{
				"id": "2465633",
				"name": "465633 (2009 JR5)",
				"absolute_magnitude_h": 20.44,
				"estimated_diameter": {"kilometers": {"estimated_diameter_min": 0.217, "estimated_diameter_max": 0.485}},
				"is_potentially_hazardous_asteroid": true,
				"close_approach_data": [
					{
						"close_approach_date": "2024-01-01",
						"relative_velocity": {"kilometers_per_hour": 45000.25},
						"miss_distance": {"kilometers": 7000000},
						"orbiting_body": "Earth"
					}
				]
			},
			{
				"id": "54016",
				"name": "(2020 AB)",
				"absolute_magnitude_h": 25,
				"estimated_diameter": {"kilometers": {"estimated_diameter_min": 0.02, "estimated_diameter_max": 0.05}},
				"is_potentially_hazardous_asteroid": false,
				"close_approach_data": []
			}
		]
	}
}`

func TestClient_FetchFeed(t *testing.T) {
	var start, end, key string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start = r.URL.Query().Get("start_date")
		end = r.URL.Query().Get("end_date")
		key = r.URL.Query().Get("api_key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedPayload))
	}))
	defer ts.Close()

	rng := domain.DateRange{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)}
	c := New(Config{FeedURL: ts.URL})
	feed, err := c.FetchFeed(context.Background(), rng)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", start)
	assert.Equal(t, "2024-01-07", end)
	assert.Equal(t, DefaultAPIKey, key)
	assert.Equal(t, rng, feed.Range)
	assert.Equal(t, 3, feed.Count)

	require.Len(t, feed.Buckets, 2)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), feed.Buckets[0].Date, "buckets sorted by date")
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), feed.Buckets[1].Date)

	require.Len(t, feed.Buckets[0].Asteroids, 2)
	first := feed.Buckets[0].Asteroids[0]
	assert.Equal(t, "2465633", first.NeoID)
	assert.Equal(t, "465633 (2009 JR5)", first.Name)
	assert.InDelta(t, 20.44, first.AbsoluteMagnitude, 0.0001)
	assert.InDelta(t, 0.217, first.DiameterMinKm, 0.0001)
	assert.InDelta(t, 0.485, first.DiameterMaxKm, 0.0001)
	assert.True(t, first.Hazardous)
	require.Len(t, first.Approaches, 1)
	assert.InDelta(t, 7000000, first.Approaches[0].MissDistanceKm, 0.001)
	assert.InDelta(t, 45000.25, first.Approaches[0].VelocityKmh, 0.001)
	assert.Empty(t, feed.Buckets[0].Asteroids[1].Approaches)

	second := feed.Buckets[1].Asteroids[0]
	require.Len(t, second.Approaches, 1)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), second.Approaches[0].Date)
	assert.InDelta(t, 4850000.5, second.Approaches[0].MissDistanceKm, 0.001)
	assert.InDelta(t, 65432.1, second.Approaches[0].VelocityKmh, 0.001)
	assert.Equal(t, "Earth", second.Approaches[0].OrbitingBody)
}

func TestClient_FetchFeed_Status(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	rng := domain.DateRange{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)}
	c := New(Config{FeedURL: ts.URL})
	feed, err := c.FetchFeed(context.Background(), rng)
	require.Error(t, err)
	assert.Nil(t, feed)
	assert.ErrorIs(t, err, domain.ErrNoData)
	assert.Contains(t, err.Error(), "2024-01-01..2024-01-07")
}

func TestClient_FetchFeed_BadBucketDate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"element_count": 0, "near_earth_objects": {"yesterday": []}}`))
	}))
	defer ts.Close()

	rng := domain.DateRange{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	_, err := New(Config{FeedURL: ts.URL}).FetchFeed(context.Background(), rng)
	require.Error(t, err)
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: `"123.5"`, want: 123.5},
		{in: `42`, want: 42},
		{in: `""`, want: 0},
		{in: `null`, want: 0},
		{in: `"abc"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var n number
			err := json.Unmarshal([]byte(tt.in), &n)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, float64(n), 0.0001)
		})
	}
}
