package hebcal

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/baobabprince/HebrewFamilyTree/internal/domain/hebdate"
	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/logging"
	"github.com/baobabprince/HebrewFamilyTree/pkg/errors"
)

// converterResponse is the subset of the /converter payload this system
// reads.
type converterResponse struct {
	HebrewYear  int    `json:"hy"`
	HebrewMonth string `json:"hm"`
	HebrewDay   int    `json:"hd"`
}

// ConvertDate converts a Gregorian calendar day to its Hebrew date.
func (c *Client) ConvertDate(ctx context.Context, day time.Time) (hebdate.Date, error) {
	query := url.Values{}
	query.Set("cfg", "json")
	query.Set("gy", strconv.Itoa(day.Year()))
	query.Set("gm", strconv.Itoa(int(day.Month())))
	query.Set("gd", strconv.Itoa(day.Day()))
	query.Set("tzid", c.timezone)

	var resp converterResponse
	if err := c.get(ctx, "/converter", query, &resp); err != nil {
		return hebdate.Date{}, err
	}
	if resp.HebrewMonth == "" || resp.HebrewDay == 0 {
		return hebdate.Date{}, errors.Newf(errors.ErrCodeHebcalBadResponse,
			"converter response missing hebrew date for %s", day.Format("2006-01-02"))
	}
	month, ok := hebdate.MonthFromEnglish(resp.HebrewMonth)
	if !ok {
		return hebdate.Date{}, errors.Newf(errors.ErrCodeHebcalUnknownMonth,
			"unrecognized hebrew month %q", resp.HebrewMonth)
	}
	return hebdate.Date{Year: resp.HebrewYear, Month: month, Day: resp.HebrewDay}, nil
}

// DateRange converts each of the days consecutive Gregorian days starting at
// start and returns them keyed by their year-agnostic Hebrew (month, day).
// Days that fail to convert are logged and skipped so a single flaky
// conversion does not sink the whole window.
func (c *Client) DateRange(ctx context.Context, start time.Time, days int) (map[hebdate.Key]time.Time, error) {
	window := make(map[hebdate.Key]time.Time, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		hd, err := c.ConvertDate(ctx, day)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			c.logger.Warn("skipping day that failed hebrew conversion",
				logging.String("date", day.Format("2006-01-02")), logging.Err(err))
			continue
		}
		if _, seen := window[hd.Key()]; !seen {
			window[hd.Key()] = day
		}
	}
	if len(window) == 0 {
		return nil, errors.New(errors.ErrCodeHebcalRequestFailed,
			"no days in the window could be converted")
	}
	return window, nil
}
