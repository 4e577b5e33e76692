// Package analysis correlates keyword mentions in picture explanations with asteroid approach frequency
package analysis

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/skyharvest/pkg/domain"
)

// DefaultKeywords are counted in explanations when no keywords are configured
var DefaultKeywords = []string{"asteroid", "meteor", "comet", "space", "galaxy", "nebula", "star"}

// Analyzer counts keywords, matching is a case-insensitive substring count
type Analyzer struct {
	keywords []string
	policy   *bluemonday.Policy
}

// WeekStat aggregates one ISO week
type WeekStat struct {
	Year       int
	Week       int
	Pictures   int
	Approaches int
	Keywords   map[string]int
}

// Label returns week as YYYY-Www
func (w WeekStat) Label() string {
	return fmt.Sprintf("%d-W%02d", w.Year, w.Week)
}

// Mentions returns total keyword mentions in the week
func (w WeekStat) Mentions() int {
	total := 0
	for _, c := range w.Keywords {
		total += c
	}
	return total
}

// New makes an analyzer for the given keywords, DefaultKeywords if empty
func New(keywords []string) *Analyzer {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	kw := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			kw = append(kw, k)
		}
	}
	return &Analyzer{keywords: kw, policy: bluemonday.StrictPolicy()}
}

// Count returns number of mentions of each keyword in text, markup is stripped first
func (a *Analyzer) Count(text string) map[string]int {
	plain := strings.ToLower(html.UnescapeString(a.policy.Sanitize(text)))
	res := make(map[string]int, len(a.keywords))
	for _, k := range a.keywords {
		res[k] = strings.Count(plain, k)
	}
	return res
}

// Weekly joins keyword counts of pictures with approach counts per ISO week.
// approaches maps YYYY-MM-DD to number of approaches on that date. Weeks are sorted ascending.
func (a *Analyzer) Weekly(pictures []domain.Picture, approaches map[string]int) ([]WeekStat, error) {
	weeks := map[[2]int]*WeekStat{}
	get := func(t time.Time) *WeekStat {
		y, w := t.ISOWeek()
		key := [2]int{y, w}
		if ws, ok := weeks[key]; ok {
			return ws
		}
		ws := &WeekStat{Year: y, Week: w, Keywords: make(map[string]int, len(a.keywords))}
		weeks[key] = ws
		return ws
	}

	for _, pic := range pictures {
		ws := get(pic.Date)
		ws.Pictures++
		for k, c := range a.Count(pic.Explanation) {
			ws.Keywords[k] += c
		}
	}

	for date, count := range approaches {
		t, err := domain.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("approach counts: %w", err)
		}
		get(t).Approaches += count
	}

	res := make([]WeekStat, 0, len(weeks))
	for _, ws := range weeks {
		res = append(res, *ws)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Year != res[j].Year {
			return res[i].Year < res[j].Year
		}
		return res[i].Week < res[j].Week
	})
	return res, nil
}

// Print writes weekly stats as a table, one column per keyword
func (a *Analyzer) Print(w io.Writer, stats []WeekStat) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "week\tpictures\tapproaches\tmentions\t%s\n", strings.Join(a.keywords, "\t"))
	for _, ws := range stats {
		cols := make([]string, 0, len(a.keywords))
		for _, k := range a.keywords {
			cols = append(cols, fmt.Sprintf("%d", ws.Keywords[k]))
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", ws.Label(), ws.Pictures, ws.Approaches, ws.Mentions(), strings.Join(cols, "\t"))
	}
	return tw.Flush()
}
