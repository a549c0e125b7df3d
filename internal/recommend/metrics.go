package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// cacheHitsTotal counts requests served from the cached result set.
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "movie_cache_hits_total",
		Help: "Total number of requests served from the movie cache",
	})

	// cacheMissesTotal counts requests that triggered a fresh catalog fetch.
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "movie_cache_misses_total",
		Help: "Total number of requests that required a fresh catalog fetch",
	})

	// fetchPagesTotal counts discover pages fetched from the catalog.
	fetchPagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "movie_fetch_pages_total",
		Help: "Total number of discover pages fetched from the catalog",
	})

	// detailFailuresTotal counts per-candidate detail lookups that failed.
	detailFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "movie_detail_failures_total",
		Help: "Total number of failed per-candidate detail lookups",
	})
)
