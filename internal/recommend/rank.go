package recommend

import (
	"sort"

	"github.com/lueurxax/movie-night-bot/internal/core/domain"
)

// DefaultTopN is the poll size the orchestrator asks for.
const DefaultTopN = 4

// SelectTop returns the n highest-rated movies, sorted by rating descending.
// The sort is stable, so ties keep their original relative order. Records
// missing a title are dropped; an empty or fully malformed input yields an
// empty slice, never an error.
func SelectTop(movies []domain.Movie, n int) []domain.Movie {
	if n <= 0 {
		n = DefaultTopN
	}

	valid := make([]domain.Movie, 0, len(movies))
	for _, m := range movies {
		if m.Title == "" {
			continue
		}

		valid = append(valid, m)
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Rating > valid[j].Rating
	})

	if len(valid) > n {
		valid = valid[:n]
	}

	return valid
}
