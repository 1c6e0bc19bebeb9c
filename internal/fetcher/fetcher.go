// Package fetcher performs timed, retried HTTP GETs for the scraping
// pipeline. A page that cannot be fetched after all retries yields
// ErrNoContent rather than a hard failure, so one dead source never aborts
// a discovery pass.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/confscout/eventscout/internal/logger"
)

const (
	// DefaultTimeout bounds a single request attempt.
	DefaultTimeout = 30 * time.Second

	// baseDelay is the initial backoff interval; it doubles per retry.
	baseDelay = 1 * time.Second
)

// ErrNoContent signals that every attempt failed. Callers treat it as
// "zero events from this source".
var ErrNoContent = errors.New("no content after retries")

// Fetcher retrieves raw markup over HTTP.
type Fetcher struct {
	client     *http.Client
	userAgent  string
	maxRetries int
}

// New creates a Fetcher. maxRetries is the total attempt budget per URL.
func New(timeout time.Duration, maxRetries int, userAgent string) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Fetcher{
		client:     &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		maxRetries: maxRetries,
	}
}

// Fetch GETs url, retrying failed attempts with exponential backoff. It
// returns the response body on the first 2xx response, or ErrNoContent once
// the attempt budget is exhausted. Each failed attempt is logged with its
// status code or error class.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	attempt := 0

	operation := func() error {
		attempt++
		data, err := f.fetchOnce(ctx, url)
		if err != nil {
			logger.Warn("Fetch attempt failed", logger.Fields{
				"url":     url,
				"attempt": attempt,
				"reason":  err.Error(),
			})
			return err
		}
		body = data
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = baseDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(f.maxRetries-1)), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, ErrNoContent
	}

	return body, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

var defaultHeaders = map[string]string{
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
}
