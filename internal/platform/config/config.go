// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. TMDBAPIKey and BotToken are
// required; the process refuses to start without them.
type Config struct {
	AppEnv     string `env:"APP_ENV" envDefault:"local"`
	TMDBAPIKey string `env:"TMDB_API_KEY,required"`
	BotToken   string `env:"BOT_TOKEN,required"`

	// Cache store selection: Postgres when a DSN is set, flat file otherwise.
	PostgresDSN string `env:"POSTGRES_DSN"`
	CacheFile   string `env:"CACHE_FILE" envDefault:"movies.csv"`

	HealthPort int `env:"HEALTH_PORT" envDefault:"8080"`

	// Catalog fetch tuning.
	TMDBBaseURL     string        `env:"TMDB_BASE_URL" envDefault:"https://api.themoviedb.org/3"`
	TMDBTimeout     time.Duration `env:"TMDB_TIMEOUT" envDefault:"20s"`
	DetailRPS       float64       `env:"TMDB_DETAIL_RPS" envDefault:"4"`
	MaxPages        int           `env:"TMDB_MAX_PAGES" envDefault:"2"`
	MaxCandidates   int           `env:"TMDB_MAX_CANDIDATES" envDefault:"20"`
	FallbackMonths  int           `env:"FALLBACK_MONTHS_BACK" envDefault:"6"`
	MinPollOptions  int           `env:"MIN_POLL_OPTIONS" envDefault:"4"`
	RecommendTopN   int           `env:"RECOMMEND_TOP_N" envDefault:"4"`
	PollRegistryTTL time.Duration `env:"POLL_REGISTRY_TTL" envDefault:"24h"`
	PollRegistryCap int           `env:"POLL_REGISTRY_CAP" envDefault:"1000"`
}

// Load reads configuration from the environment, loading a .env file first
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional, error is expected when not present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	return cfg, nil
}
