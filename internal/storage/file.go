package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lueurxax/movie-night-bot/internal/core/domain"
	"github.com/lueurxax/movie-night-bot/internal/core/errors"
)

// Column order written to the cache file. Readers resolve columns by header
// name, so the order is a convention, not a contract.
var fileColumns = []string{"title", "year", "rating", "genre", "released", "language", "country"}

// Columns a cached set must carry to be usable; a file missing any of them is
// malformed and treated as a cache miss.
var requiredColumns = []string{"title", "rating", "language", "country", "released"}

// FileStore persists the cache as a flat CSV file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and parses the cache file.
func (s *FileStore) Load(_ context.Context) ([]domain.Movie, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrCacheNotFound
		}

		return nil, fmt.Errorf("open cache file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	if len(rows) == 0 {
		return nil, errors.ErrCacheNotFound
	}

	index, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	movies := make([]domain.Movie, 0, len(rows)-1)

	for _, row := range rows[1:] {
		movies = append(movies, movieFromRow(row, index))
	}

	return movies, nil
}

// Save overwrites the cache file with the given set. The write goes through a
// temp file and rename so a concurrent reader never sees a half-written set.
func (s *FileStore) Save(_ context.Context, movies []domain.Movie) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".movies-*.csv")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}

	w := csv.NewWriter(tmp)

	rows := make([][]string, 0, len(movies)+1)
	rows = append(rows, fileColumns)

	for _, m := range movies {
		rows = append(rows, []string{
			m.Title,
			m.Year,
			strconv.FormatFloat(m.Rating, 'f', -1, 64),
			m.Genre,
			m.Released,
			m.Language,
			m.Country,
		})
	}

	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("write cache file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("close temp cache file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("replace cache file: %w", err)
	}

	return nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", errors.ErrMalformedCache, col)
		}
	}

	return index, nil
}

func movieFromRow(row []string, index map[string]int) domain.Movie {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}

		return row[i]
	}

	rating, _ := strconv.ParseFloat(field("rating"), 64)
	if rating < 0 {
		rating = 0
	}

	return domain.Movie{
		Title:    field("title"),
		Year:     field("year"),
		Rating:   rating,
		Genre:    field("genre"),
		Released: field("released"),
		Language: field("language"),
		Country:  field("country"),
	}
}
