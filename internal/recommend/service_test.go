package recommend

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/movie-night-bot/internal/catalog"
	"github.com/lueurxax/movie-night-bot/internal/core/domain"
	"github.com/lueurxax/movie-night-bot/internal/storage"
)

func fixedNow() time.Time {
	return time.Date(2026, time.August, 23, 12, 0, 0, 0, time.UTC)
}

func newTestService(cat Catalog, cache storage.MovieCache) *Service {
	logger := zerolog.Nop()
	fetcher := NewFetcher(cat, 2, 20, &logger)
	fetcher.now = fixedNow

	svc := NewService(fetcher, cache, 4, 6, &logger)
	svc.now = fixedNow

	return svc
}

func frenchMovie(title, released string, rating float64) domain.Movie {
	return domain.Movie{
		Title:    title,
		Year:     released[:4],
		Rating:   rating,
		Genre:    "Drama",
		Released: released,
		Language: "FR",
		Country:  "France",
	}
}

func TestMoviesServedFromCacheAtThreshold(t *testing.T) {
	cache := storage.NewMemoryStore()
	require.NoError(t, cache.Save(context.Background(), []domain.Movie{
		frenchMovie("A", "2026-08-01", 8.0),
		frenchMovie("B", "2026-08-02", 7.0),
		frenchMovie("C", "2026-09-03", 6.0),
		frenchMovie("D", "2026-09-04", 5.0),
	}))

	cat := &fakeCatalog{}
	svc := newTestService(cat, cache)

	got := svc.Movies(context.Background(), "french", "france", false)

	assert.Len(t, got, 4)
	assert.Zero(t, cat.discoverCalls)
}

func TestMoviesBelowThresholdFetchesFresh(t *testing.T) {
	cache := storage.NewMemoryStore()
	require.NoError(t, cache.Save(context.Background(), []domain.Movie{
		frenchMovie("A", "2026-08-01", 8.0),
		frenchMovie("B", "2026-08-02", 7.0),
		frenchMovie("C", "2026-09-03", 6.0),
	}))

	cat := &fakeCatalog{
		pages: map[int]catalog.DiscoverPage{
			1: {Page: 1, TotalPages: 1, Results: []catalog.SearchResult{
				{ID: 1, Title: "Fresh One", ReleaseDate: "2026-08-10", VoteAverage: 9.0},
			}},
		},
		details: map[int]catalog.MovieDetail{1: frenchDetail()},
	}
	svc := newTestService(cat, cache)

	got := svc.Movies(context.Background(), "french", "france", false)

	require.Len(t, got, 1)
	assert.Equal(t, "Fresh One", got[0].Title)
	assert.Equal(t, 1, cat.discoverCalls)

	// The fetched set replaced the cache.
	saved, err := cache.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Fresh One", saved[0].Title)
}

func TestMoviesSecondCallReusesCache(t *testing.T) {
	results := make([]catalog.SearchResult, 0, 5)
	details := make(map[int]catalog.MovieDetail, 5)

	for i := 1; i <= 5; i++ {
		results = append(results, catalog.SearchResult{
			ID:          i,
			Title:       "Candidate " + string(rune('A'+i)),
			ReleaseDate: "2026-08-10",
			VoteAverage: float64(i),
		})
		details[i] = frenchDetail()
	}

	cat := &fakeCatalog{
		pages:   map[int]catalog.DiscoverPage{1: {Page: 1, TotalPages: 1, Results: results}},
		details: details,
	}
	svc := newTestService(cat, storage.NewMemoryStore())

	first := svc.Movies(context.Background(), "french", "france", false)
	require.Len(t, first, 5)
	assert.Equal(t, 1, cat.discoverCalls)

	second := svc.Movies(context.Background(), "french", "france", false)

	// Identical request is answered from the persisted set with no new calls.
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cat.discoverCalls)
}

func TestMoviesFallbackWidensWindow(t *testing.T) {
	cache := storage.NewMemoryStore()
	require.NoError(t, cache.Save(context.Background(), []domain.Movie{
		frenchMovie("Spring Release", "2026-03-01", 8.0),
		frenchMovie("Winter Release", "2026-02-15", 7.5),
		frenchMovie("Late Summer", "2026-08-20", 7.0),
		frenchMovie("Next Month", "2026-09-05", 6.5),
	}))

	cat := &fakeCatalog{}
	svc := newTestService(cat, cache)

	// Primary window covers only August and September; two of the cached
	// rows fall outside it, so the primary request misses the threshold.
	primary := svc.Movies(context.Background(), "french", "france", false)
	assert.Less(t, len(primary), svc.MinResults())

	fallback := svc.Movies(context.Background(), "french", "france", true)
	assert.Len(t, fallback, 4)
}

func TestMoviesFallbackShortlist(t *testing.T) {
	results := make([]catalog.SearchResult, 0, 5)
	details := make(map[int]catalog.MovieDetail, 5)
	ratings := []float64{6.1, 9.3, 7.7, 8.8, 5.0}

	for i, rating := range ratings {
		results = append(results, catalog.SearchResult{
			ID:          i + 1,
			Title:       "Fallback " + string(rune('A'+i)),
			ReleaseDate: "2026-04-10",
			VoteAverage: rating,
		})
		details[i+1] = frenchDetail()
	}

	cat := &fakeCatalog{
		pages:   map[int]catalog.DiscoverPage{1: {Page: 1, TotalPages: 1, Results: results}},
		details: details,
	}
	svc := newTestService(cat, storage.NewMemoryStore())

	movies := svc.Movies(context.Background(), "french", "france", true)
	require.Len(t, movies, 5)

	top := SelectTop(movies, 4)

	require.Len(t, top, 4)
	assert.Equal(t, 9.3, top[0].Rating)
	assert.Equal(t, 8.8, top[1].Rating)
	assert.Equal(t, 7.7, top[2].Rating)
	assert.Equal(t, 6.1, top[3].Rating)
}

func TestWindow(t *testing.T) {
	svc := newTestService(&fakeCatalog{}, storage.NewMemoryStore())

	assert.Equal(t, MonthWindow{"2026-08", "2026-09"}, svc.Window(false))

	fallback := svc.Window(true)
	assert.Len(t, fallback, 8)
	assert.Equal(t, "2026-02", fallback[0])
	assert.Equal(t, "2026-09", fallback[len(fallback)-1])
}
