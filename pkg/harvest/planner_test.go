package harvest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/skyharvest/pkg/domain"
)

func date(s string) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixedNow(s string) func() time.Time {
	return func() time.Time { return date(s).Add(15 * time.Hour) }
}

func TestNewPlanner_Defaults(t *testing.T) {
	p := NewPlanner(PlannerConfig{})
	assert.Equal(t, DefaultEpoch, p.epoch)
	assert.Equal(t, DefaultWindowDays, p.windowDays)
	assert.NotNil(t, p.now)
}

func TestPlanner_Start(t *testing.T) {
	p := NewPlanner(PlannerConfig{Now: fixedNow("2024-06-01")})

	start, cold := p.Start(time.Time{})
	assert.True(t, cold)
	assert.Equal(t, date("2024-01-01"), start)

	start, cold = p.Start(date("2024-01-07"))
	assert.False(t, cold)
	assert.Equal(t, date("2024-01-08"), start)

	start, cold = p.Start(date("2024-02-28").Add(23 * time.Hour))
	assert.False(t, cold)
	assert.Equal(t, date("2024-02-29"), start, "time of day ignored")
}

func TestPlanner_CustomEpoch(t *testing.T) {
	p := NewPlanner(PlannerConfig{Epoch: time.Date(2023, 5, 10, 12, 30, 0, 0, time.UTC)})
	start, cold := p.Start(time.Time{})
	assert.True(t, cold)
	assert.Equal(t, date("2023-05-10"), start)
}

func TestPlanner_Future(t *testing.T) {
	p := NewPlanner(PlannerConfig{Now: fixedNow("2024-01-10")})
	assert.Equal(t, date("2024-01-10"), p.Today())
	assert.False(t, p.Future(date("2024-01-09")))
	assert.False(t, p.Future(date("2024-01-10")), "today is not in the future")
	assert.True(t, p.Future(date("2024-01-11")))
}

func TestPlanner_Window(t *testing.T) {
	tests := []struct {
		name   string
		now    string
		days   int
		start  string
		want   domain.DateRange
		wantOK bool
	}{
		{name: "full window", now: "2024-06-01", start: "2024-01-01",
			want: domain.DateRange{Start: date("2024-01-01"), End: date("2024-01-07")}, wantOK: true},
		{name: "clamped to today", now: "2024-01-04", start: "2024-01-01",
			want: domain.DateRange{Start: date("2024-01-01"), End: date("2024-01-04")}, wantOK: true},
		{name: "single day today", now: "2024-01-04", start: "2024-01-04",
			want: domain.DateRange{Start: date("2024-01-04"), End: date("2024-01-04")}, wantOK: true},
		{name: "start in the future", now: "2024-01-04", start: "2024-01-05",
			want: domain.DateRange{Start: date("2024-01-05"), End: date("2024-01-05")}, wantOK: false},
		{name: "custom size", now: "2024-06-01", days: 3, start: "2024-01-30",
			want: domain.DateRange{Start: date("2024-01-30"), End: date("2024-02-01")}, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlanner(PlannerConfig{Now: fixedNow(tt.now), WindowDays: tt.days})
			got, ok := p.Window(date(tt.start))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got.Days(), DefaultWindowDays)
		})
	}
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "short", shorten("short", 50))
	assert.Equal(t, "abcde", shorten("abcde", 5))
	assert.Equal(t, "abc...", shorten("abcdef", 3))
	assert.Equal(t, "Комет...", shorten("Кометы", 5), "cut by runes")
}
