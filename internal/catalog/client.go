// Package catalog wraps the TMDB HTTP API behind the two calls the
// recommendation pipeline needs: paginated discovery by date range and
// per-movie detail lookup.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	coreerrors "github.com/lueurxax/movie-night-bot/internal/core/errors"
)

const (
	defaultBaseURL     = "https://api.themoviedb.org/3"
	defaultHTTPTimeout = 20 * time.Second
	defaultDetailRPS   = 4
)

// Client is a TMDB API client. Detail lookups are paced with a fixed-rate
// limiter so sequential per-candidate calls stay under the API rate ceiling.
type Client struct {
	apiKey  string
	baseURL string
	limiter *rate.Limiter
	client  *http.Client
}

// NewClient creates a TMDB client. Zero or negative tuning values fall back
// to defaults.
func NewClient(apiKey, baseURL string, timeout time.Duration, detailRPS float64) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	if detailRPS <= 0 {
		detailRPS = defaultDetailRPS
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		limiter: rate.NewLimiter(rate.Limit(detailRPS), 1),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// DiscoverMovies fetches one page of movies matching the query's date range,
// language and region.
func (c *Client) DiscoverMovies(ctx context.Context, q DiscoverQuery) (DiscoverPage, error) {
	values := url.Values{}
	values.Set("api_key", c.apiKey)
	values.Set("language", q.LanguageCode)
	values.Set("region", q.RegionCode)
	values.Set("primary_release_date.gte", q.StartDate)
	values.Set("primary_release_date.lte", q.EndDate)
	values.Set("with_original_language", q.LanguageCode)
	values.Set("page", strconv.Itoa(q.Page))

	var page DiscoverPage
	if err := c.get(ctx, "/discover/movie", values, &page); err != nil {
		return DiscoverPage{}, fmt.Errorf("discover movies: %w", err)
	}

	return page, nil
}

// MovieDetail fetches the detail record for a single movie. It waits on the
// pacing limiter first, so callers issuing sequential lookups are throttled.
func (c *Client) MovieDetail(ctx context.Context, id int, languageCode string) (MovieDetail, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return MovieDetail{}, fmt.Errorf("detail rate limit: %w", err)
	}

	values := url.Values{}
	values.Set("api_key", c.apiKey)
	values.Set("language", languageCode)

	var detail MovieDetail
	if err := c.get(ctx, "/movie/"+strconv.Itoa(id), values, &detail); err != nil {
		return MovieDetail{}, fmt.Errorf("movie detail %d: %w", id, err)
	}

	return detail, nil
}

func (c *Client) get(ctx context.Context, path string, values url.Values, out interface{}) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse endpoint: %w", err)
	}

	endpoint.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", coreerrors.ErrCatalogStatus, resp.StatusCode)
	}

	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}

	return nil
}
