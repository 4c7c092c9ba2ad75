package hebcal

import (
	"context"
	"net/url"
	"time"

	"github.com/baobabprince/HebrewFamilyTree/pkg/errors"
)

// calendarItem is one entry of the /hebcal calendar feed.
type calendarItem struct {
	Title    string `json:"title"`
	Hebrew   string `json:"hebrew"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

type calendarResponse struct {
	Items []calendarItem `json:"items"`
}

// Parasha returns the name of the Torah portion read in the week starting
// at start.  When lang is "he" the Hebrew name is returned, otherwise the
// transliterated title.
func (c *Client) Parasha(ctx context.Context, start time.Time, lang string) (string, error) {
	end := start.AddDate(0, 0, 6)

	query := url.Values{}
	query.Set("v", "1")
	query.Set("cfg", "json")
	query.Set("s", "on")
	query.Set("start", start.Format("2006-01-02"))
	query.Set("end", end.Format("2006-01-02"))

	var resp calendarResponse
	if err := c.get(ctx, "/hebcal", query, &resp); err != nil {
		return "", err
	}
	for _, item := range resp.Items {
		if item.Category != "parashat" {
			continue
		}
		if lang == "he" && item.Hebrew != "" {
			return item.Hebrew, nil
		}
		return item.Title, nil
	}
	return "", errors.Newf(errors.ErrCodeHebcalBadResponse,
		"no parasha entry between %s and %s",
		start.Format("2006-01-02"), end.Format("2006-01-02"))
}
