package harvest_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/umputun/skyharvest/pkg/domain"
	"github.com/umputun/skyharvest/pkg/harvest"
)

func TestHeader(t *testing.T) {
	buf := bytes.Buffer{}
	harvest.Header(&buf, domain.PipelineNEO)
	assert.Contains(t, buf.String(), "NeoWs Data Collection")

	buf.Reset()
	harvest.Header(&buf, domain.PipelineAPOD)
	assert.Contains(t, buf.String(), "APOD Data Collection")
}

func TestReport(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name    string
		res     domain.RunResult
		want    []string
		notWant []string
	}{
		{
			name: "apod with more to fetch",
			res:  domain.RunResult{Pipeline: domain.PipelineAPOD, Added: 25, Totals: domain.Totals{Pictures: 50}},
			want: []string{"✓ added 25 APOD entries", "Total APOD entries in database: 50", "Run again to fetch more data!"},
		},
		{
			name:    "apod up to date with failures",
			res:     domain.RunResult{Pipeline: domain.PipelineAPOD, Added: 1, Skipped: 2, Failed: []string{"2024-01-01"}, UpToDate: true},
			want:    []string{"✓ added 1 APOD entry\n", "Skipped 2 duplicates, no data for 1 day\n"},
			notWant: []string{"Run again"},
		},
		{
			name: "neo",
			res: domain.RunResult{Pipeline: domain.PipelineNEO, Added: 1, Approaches: 3,
				Totals: domain.Totals{Asteroids: 10, Approaches: 12}},
			want: []string{"✓ added 1 item to database", "New approaches stored: 3",
				"Total asteroids in database: 10", "Total approaches in database: 12"},
		},
		{
			name:    "neo aborted",
			res:     domain.RunResult{Pipeline: domain.PipelineNEO, Aborted: true, Failed: []string{"2024-01-01..2024-01-07"}},
			want:    []string{"✗ failed to fetch data for 2024-01-01..2024-01-07"},
			notWant: []string{"Run again", "Total asteroids"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.Buffer{}
			harvest.Report(&buf, tt.res)
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, buf.String(), w)
			}
		})
	}
}
