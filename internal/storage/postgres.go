package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/lueurxax/movie-night-bot/internal/core/domain"
	"github.com/lueurxax/movie-night-bot/internal/core/errors"
	"github.com/lueurxax/movie-night-bot/migrations"
)

const (
	maxConnectionRetries = 3
	connectionRetrySleep = 2 * time.Second
	migrationLockID      = 7321
)

// PostgresStore persists the cache in a single movie_cache table. Save
// overwrites the whole table in one transaction, so readers always see a
// complete set.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *zerolog.Logger
}

// NewPostgresStore connects to the database with a few retries.
func NewPostgresStore(ctx context.Context, dsn string, logger *zerolog.Logger) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	var pool *pgxpool.Pool

	for i := 0; i < maxConnectionRetries; i++ {
		pool, err = pgxpool.NewWithConfig(ctx, config)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return &PostgresStore{pool: pool, logger: logger}, nil
			}
		}

		if pool != nil {
			pool.Close()
		}

		time.Sleep(connectionRetrySleep)
	}

	return nil, fmt.Errorf("failed to connect to database after retries: %w", err)
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping reports database reachability for readiness checks.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

type gooseLogger struct {
	logger *zerolog.Logger
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatal().Msgf(format, v...)
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info().Msgf(format, v...)
}

// Migrate runs database migrations using goose. An advisory lock ensures only
// one migration runs at a time across multiple instances.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", migrationLockID); err != nil {
		return fmt.Errorf("acquire advisory lock: %w", err)
	}

	defer func() {
		//nolint:errcheck // advisory unlock in defer is best-effort, lock released on connection close anyway
		_, _ = conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", migrationLockID)
	}()

	dbSQL := stdlib.OpenDB(*s.pool.Config().ConnConfig)

	defer func() {
		_ = dbSQL.Close()
	}()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&gooseLogger{logger: s.logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.Up(dbSQL, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Load reads the full cached set.
func (s *PostgresStore) Load(ctx context.Context) ([]domain.Movie, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT title, year, rating, genre, released, language, country FROM movie_cache ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query movie cache: %w", err)
	}
	defer rows.Close()

	var movies []domain.Movie

	for rows.Next() {
		var m domain.Movie
		if err := rows.Scan(&m.Title, &m.Year, &m.Rating, &m.Genre, &m.Released, &m.Language, &m.Country); err != nil {
			return nil, fmt.Errorf("scan movie cache row: %w", err)
		}

		movies = append(movies, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie cache rows: %w", err)
	}

	if len(movies) == 0 {
		return nil, errors.ErrCacheNotFound
	}

	return movies, nil
}

// Save overwrites the cached set in one transaction.
func (s *PostgresStore) Save(ctx context.Context, movies []domain.Movie) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin cache overwrite: %w", err)
	}

	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `TRUNCATE movie_cache`); err != nil {
		return fmt.Errorf("truncate movie cache: %w", err)
	}

	for _, m := range movies {
		if _, err := tx.Exec(ctx,
			`INSERT INTO movie_cache (title, year, rating, genre, released, language, country)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			m.Title, m.Year, m.Rating, m.Genre, m.Released, m.Language, m.Country); err != nil {
			return fmt.Errorf("insert movie cache row: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit cache overwrite: %w", err)
	}

	return nil
}
