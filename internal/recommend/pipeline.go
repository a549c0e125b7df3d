package recommend

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lueurxax/movie-night-bot/internal/catalog"
	"github.com/lueurxax/movie-night-bot/internal/core/domain"
)

// Log key constants for the fetch pipeline.
const (
	logKeyTitle = "title"
	logKeyPage  = "page"
)

// Catalog is the slice of the TMDB client the pipeline consumes.
type Catalog interface {
	DiscoverMovies(ctx context.Context, q catalog.DiscoverQuery) (catalog.DiscoverPage, error)
	MovieDetail(ctx context.Context, id int, languageCode string) (catalog.MovieDetail, error)
}

// Fetcher turns raw discover+detail responses into normalized movie records,
// applying window, language and country filters.
type Fetcher struct {
	catalog       Catalog
	maxPages      int
	maxCandidates int
	logger        *zerolog.Logger
	now           func() time.Time
}

// NewFetcher creates a Fetcher. Zero or negative limits fall back to the
// defaults of 2 pages and 20 accepted candidates.
func NewFetcher(cat Catalog, maxPages, maxCandidates int, logger *zerolog.Logger) *Fetcher {
	if maxPages <= 0 {
		maxPages = 2
	}

	if maxCandidates <= 0 {
		maxCandidates = 20
	}

	return &Fetcher{
		catalog:       cat,
		maxPages:      maxPages,
		maxCandidates: maxCandidates,
		logger:        logger,
		now:           time.Now,
	}
}

// Fetch pulls discover pages bounded by [startDate, endDate], keeps only
// candidates whose release month is in window, and looks up details for those.
// It returns the records matching the requested language/country (accepted)
// and every normalized in-window record regardless of those filters
// (examined), both de-duplicated by title.
//
// Per-candidate lookup failures are logged and skipped. A discover page
// failure stops paging and returns whatever was collected so far.
func (f *Fetcher) Fetch(ctx context.Context, language, country string, window MonthWindow, startDate, endDate string) (accepted, examined []domain.Movie) {
	languageCode := DefaultLanguageCode
	if language != "" {
		languageCode = LanguageCode(language)
	}

	regionCode := DefaultRegionCode
	if country != "" {
		regionCode = RegionCode(country)
	}

	for page := 1; len(accepted) < f.maxCandidates && page <= f.maxPages; page++ {
		result, err := f.catalog.DiscoverMovies(ctx, catalog.DiscoverQuery{
			LanguageCode: languageCode,
			RegionCode:   regionCode,
			StartDate:    startDate,
			EndDate:      endDate,
			Page:         page,
		})
		if err != nil {
			f.logger.Warn().Err(err).Int(logKeyPage, page).Msg("discover page failed, stopping paging")

			break
		}

		fetchPagesTotal.Inc()
		f.logger.Debug().Int(logKeyPage, page).Int("results", len(result.Results)).Msg("discover page fetched")

		for _, raw := range result.Results {
			movie, matched, ok := f.examine(ctx, raw, language, country, languageCode, regionCode, window)
			if !ok {
				continue
			}

			examined = append(examined, movie)

			if matched {
				accepted = append(accepted, movie)
			}
		}

		if page >= result.TotalPages {
			break
		}
	}

	return dedupeByTitle(accepted), dedupeByTitle(examined)
}

// examine normalizes a single raw result. ok is false when the candidate is
// out of window, failed its detail lookup, or lacks a title; matched reports
// whether it passes the requested language/country filters.
func (f *Fetcher) examine(ctx context.Context, raw catalog.SearchResult, language, country, languageCode, regionCode string, window MonthWindow) (movie domain.Movie, matched, ok bool) {
	month, valid := MonthOf(raw.ReleaseDate)
	if !valid || !window.Contains(month) {
		f.logger.Debug().Str(logKeyTitle, raw.Title).Str("released", raw.ReleaseDate).Msg("skipped: outside target window")

		return domain.Movie{}, false, false
	}

	detail, err := f.catalog.MovieDetail(ctx, raw.ID, languageCode)
	if err != nil {
		detailFailuresTotal.Inc()
		f.logger.Warn().Err(err).Str(logKeyTitle, raw.Title).Msg("detail lookup failed, skipping candidate")

		return domain.Movie{}, false, false
	}

	if raw.Title == "" {
		return domain.Movie{}, false, false
	}

	movie = f.normalize(raw, detail, languageCode)

	matched = (language == "" || languageCode == detail.OriginalLanguage) &&
		(country == "" || hasCountryCode(detail.ProductionCountries, regionCode))
	if !matched {
		f.logger.Debug().Str(logKeyTitle, raw.Title).Msg("skipped: language or country mismatch")
	}

	return movie, matched, true
}

func (f *Fetcher) normalize(raw catalog.SearchResult, detail catalog.MovieDetail, languageCode string) domain.Movie {
	year := strconv.Itoa(f.now().Year())
	if len(raw.ReleaseDate) >= 4 {
		year = raw.ReleaseDate[:4]
	}

	genres := make([]string, 0, len(detail.Genres))
	for _, g := range detail.Genres {
		genres = append(genres, g.Name)
	}

	countries := make([]string, 0, len(detail.ProductionCountries))
	for _, c := range detail.ProductionCountries {
		countries = append(countries, c.Name)
	}

	movieLanguage := detail.OriginalLanguage
	if movieLanguage == "" {
		movieLanguage = languageCode
	}

	rating := raw.VoteAverage
	if rating < 0 {
		rating = 0
	}

	return domain.Movie{
		Title:    raw.Title,
		Year:     year,
		Rating:   rating,
		Genre:    strings.Join(genres, ", "),
		Released: raw.ReleaseDate,
		Language: strings.ToUpper(movieLanguage),
		Country:  strings.Join(countries, ", "),
	}
}

func hasCountryCode(countries []catalog.ProductionCountry, code string) bool {
	for _, c := range countries {
		if c.ISO3166 == code {
			return true
		}
	}

	return false
}

// dedupeByTitle keeps the first record seen for each title and drops records
// without a title.
func dedupeByTitle(movies []domain.Movie) []domain.Movie {
	seen := make(map[string]struct{}, len(movies))
	result := make([]domain.Movie, 0, len(movies))

	for _, m := range movies {
		if m.Title == "" {
			continue
		}

		if _, ok := seen[m.Title]; ok {
			continue
		}

		seen[m.Title] = struct{}{}

		result = append(result, m)
	}

	return result
}
