// Package recommend implements the movie-selection pipeline: date windows,
// fetch/filter/normalize, the cache-or-fetch decision, and ranking.
package recommend

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lueurxax/movie-night-bot/internal/core/domain"
	"github.com/lueurxax/movie-night-bot/internal/core/errors"
	"github.com/lueurxax/movie-night-bot/internal/storage"
)

// MinPollOptions is the minimum distinct movies needed to form a poll; the
// cache is only reused when it can still satisfy this many after filtering.
const MinPollOptions = 4

// Service answers "give me movies for this language/country/window" using the
// cached result set when it still satisfies the request, and a fresh catalog
// fetch otherwise.
type Service struct {
	fetcher    *Fetcher
	cache      storage.MovieCache
	minResults int
	monthsBack int
	logger     *zerolog.Logger

	// mu serializes the check-then-overwrite of the shared cache entry across
	// concurrently dispatched conversations.
	mu  sync.Mutex
	now func() time.Time
}

// NewService creates a Service. Zero or negative tuning values fall back to
// the defaults of 4 minimum results and 6 fallback months.
func NewService(fetcher *Fetcher, cache storage.MovieCache, minResults, monthsBack int, logger *zerolog.Logger) *Service {
	if minResults <= 0 {
		minResults = MinPollOptions
	}

	if monthsBack <= 0 {
		monthsBack = DefaultMonthsBack
	}

	return &Service{
		fetcher:    fetcher,
		cache:      cache,
		minResults: minResults,
		monthsBack: monthsBack,
		logger:     logger,
		now:        time.Now,
	}
}

// Window returns the month window a request with the given fallback flag
// targets, for display alongside results.
func (s *Service) Window(useFallback bool) MonthWindow {
	if useFallback {
		return FallbackWindow(s.now(), s.monthsBack)
	}

	return PrimaryWindow(s.now())
}

// MinResults returns the poll-formation threshold.
func (s *Service) MinResults() int {
	return s.minResults
}

// Movies returns the movies matching the requested language/country (both
// optional) within the primary or fallback window.
//
// The cached set is consulted first: its rows are re-filtered against the
// requested language/country (case-insensitive substring match) and the
// current window on every call, regardless of which window populated the
// cache. Only when fewer than the minimum survive does the service fetch
// fresh data and overwrite the cache.
func (s *Service) Movies(ctx context.Context, language, country string, useFallback bool) []domain.Movie {
	window := s.Window(useFallback)

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached := s.fromCache(ctx, language, country, window); len(cached) >= s.minResults {
		cacheHitsTotal.Inc()
		s.logger.Info().Int("movies", len(cached)).Msg("serving movies from cache")

		return cached
	}

	cacheMissesTotal.Inc()

	startDate, endDate := DateRange(s.now(), useFallback, s.monthsBack)

	accepted, examined := s.fetcher.Fetch(ctx, language, country, window, startDate, endDate)

	// Persist everything examined for this window, independent of the
	// requested language/country, so later requests with other filters can
	// still reuse the set.
	if len(examined) > 0 {
		if err := s.cache.Save(ctx, examined); err != nil {
			s.logger.Error().Err(err).Msg("failed to overwrite movie cache")
		}
	}

	// Language/country narrowing is already enforced during the fetch; only
	// the window re-filter applies to fresh results.
	return filterByWindow(accepted, window)
}

func (s *Service) fromCache(ctx context.Context, language, country string, window MonthWindow) []domain.Movie {
	cached, err := s.cache.Load(ctx)
	if err != nil {
		if errors.Is(err, errors.ErrCacheNotFound) || errors.Is(err, errors.ErrMalformedCache) {
			s.logger.Debug().Err(err).Msg("movie cache unusable, fetching fresh")
		} else {
			s.logger.Warn().Err(err).Msg("movie cache load failed, fetching fresh")
		}

		return nil
	}

	filtered := make([]domain.Movie, 0, len(cached))

	for _, m := range cached {
		if language != "" && !cachedLanguageMatches(m.Language, language) {
			continue
		}

		if country != "" && !strings.Contains(strings.ToLower(m.Country), strings.ToLower(country)) {
			continue
		}

		month, ok := MonthOf(m.Released)
		if !ok || !window.Contains(month) {
			continue
		}

		filtered = append(filtered, m)
	}

	return filtered
}

// cachedLanguageMatches matches a request like "french" against a cached
// language column holding an upper-cased code like "FR". The raw query is
// tried first, then its mapped code, so both code-typed and name-typed
// requests reuse the cache.
func cachedLanguageMatches(field, query string) bool {
	lowered := strings.ToLower(field)
	if strings.Contains(lowered, strings.ToLower(query)) {
		return true
	}

	return strings.Contains(lowered, LanguageCode(query))
}

func filterByWindow(movies []domain.Movie, window MonthWindow) []domain.Movie {
	filtered := make([]domain.Movie, 0, len(movies))

	for _, m := range movies {
		month, ok := MonthOf(m.Released)
		if !ok || !window.Contains(month) {
			continue
		}

		filtered = append(filtered, m)
	}

	return filtered
}
