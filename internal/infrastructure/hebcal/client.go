// Package hebcal is the HTTP client for the Hebcal calendar-conversion
// service.  It covers the two endpoints this system needs: the per-day
// Gregorian→Hebrew converter and the weekly-parasha calendar feed.
package hebcal

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/logging"
	"github.com/baobabprince/HebrewFamilyTree/pkg/errors"
)

// DefaultBaseURL is the public Hebcal service root.
const DefaultBaseURL = "https://www.hebcal.com"

// DefaultTimezone pins conversions to the calendar's reference timezone.
const DefaultTimezone = "Asia/Jerusalem"

const userAgent = "hebrew-family-tree/1.0"

// Client talks to the Hebcal API.  Construct with NewClient; the zero value
// is not usable.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	userAgent    string
	timezone     string
	logger       logging.Logger
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// NewClient builds a Client with sane defaults: the public service URL, a
// 10-second timeout, redirects treated as failures (the converter redirects
// on invalid dates instead of returning an error status), and 3 retries
// with jittered exponential backoff.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		userAgent:    userAgent,
		timezone:     DefaultTimezone,
		logger:       logging.NewNopLogger(),
		retryMax:     3,
		retryWaitMin: 500 * time.Millisecond,
		retryWaitMax: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a GET with retries and decodes the JSON response into result.
func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	fullURL := c.baseURL + path + "?" + query.Encode()

	var lastErr error
	for attempt := 0; attempt <= c.retryMax; attempt++ {
		if attempt > 0 {
			backoff := c.backoff(attempt)
			c.logger.Debug("retrying hebcal request",
				logging.Int("attempt", attempt), logging.Duration("backoff", backoff))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), errors.ErrCodeTimeout, "hebcal request cancelled")
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeHebcalRequestFailed, "failed to build hebcal request")
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("X-Request-ID", uuid.NewString())

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			c.logger.Warn("hebcal request failed", logging.Err(err))
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		c.logger.Debug("hebcal response",
			logging.String("path", path),
			logging.Int("status", resp.StatusCode),
			logging.Duration("took", time.Since(start)))
		if readErr != nil {
			lastErr = readErr
			continue
		}

		// The converter answers invalid dates with a redirect rather than an
		// error status; treat any non-200 as a failure.
		if resp.StatusCode != http.StatusOK {
			lastErr = errors.Newf(errors.ErrCodeHebcalRequestFailed,
				"hebcal returned HTTP %d", resp.StatusCode)
			if resp.StatusCode >= http.StatusInternalServerError {
				continue
			}
			return lastErr
		}

		if err := json.Unmarshal(body, result); err != nil {
			return errors.Wrap(err, errors.ErrCodeHebcalBadResponse, "failed to decode hebcal response")
		}
		return nil
	}

	return errors.Wrap(lastErr, errors.ErrCodeHebcalRequestFailed, "hebcal request exhausted retries")
}

// backoff computes the jittered exponential wait before the given attempt.
func (c *Client) backoff(attempt int) time.Duration {
	wait := c.retryWaitMin << uint(attempt-1)
	if wait > c.retryWaitMax {
		wait = c.retryWaitMax
	}
	// Up to 50% jitter to avoid lockstep retries.
	return wait + time.Duration(rand.Int63n(int64(wait)/2+1))
}
