package nasa

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/skyharvest/pkg/domain"
)

// apodResponse is the picture-of-the-day payload
type apodResponse struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	URL         string `json:"url"`
	MediaType   string `json:"media_type"`
	Copyright   string `json:"copyright"`
}

// FetchPicture retrieves the picture of the given day
func (c *Client) FetchPicture(ctx context.Context, day time.Time) (*domain.Picture, error) {
	date := day.Format(domain.DateLayout)
	params := url.Values{}
	params.Set("date", date)

	var resp apodResponse
	if err := c.getJSON(ctx, c.apodURL, params, date, &resp); err != nil {
		return nil, err
	}

	// upstream echoes the requested date, fall back to it if missing
	picDate := day
	if resp.Date != "" {
		d, err := domain.ParseDate(resp.Date)
		if err != nil {
			return nil, fmt.Errorf("picture %s: %w", date, err)
		}
		picDate = d
	}

	copyright := strings.TrimSpace(resp.Copyright)
	if copyright == "" {
		copyright = domain.DefaultCopyright
	}

	return &domain.Picture{
		Date:        domain.TruncateDay(picDate),
		Title:       strings.TrimSpace(resp.Title),
		Explanation: resp.Explanation,
		URL:         resp.URL,
		MediaType:   domain.MediaType(resp.MediaType),
		Copyright:   copyright,
	}, nil
}
