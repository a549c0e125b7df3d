package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/movie-night-bot/internal/core/domain"
)

func TestSelectTop(t *testing.T) {
	movies := []domain.Movie{
		{Title: "Slow Burn", Rating: 7.2},
		{Title: "First Nine", Rating: 9.1},
		{Title: "Second Nine", Rating: 9.1},
		{Title: "Flop", Rating: 3.0},
	}

	got := SelectTop(movies, 2)

	require.Len(t, got, 2)
	// Ties keep their original relative order.
	assert.Equal(t, "First Nine", got[0].Title)
	assert.Equal(t, "Second Nine", got[1].Title)
}

func TestSelectTopSortsDescending(t *testing.T) {
	movies := []domain.Movie{
		{Title: "C", Rating: 5.5},
		{Title: "A", Rating: 8.8},
		{Title: "B", Rating: 7.0},
	}

	got := SelectTop(movies, 4)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{got[0].Title, got[1].Title, got[2].Title})
}

func TestSelectTopEmptyAndMalformed(t *testing.T) {
	assert.Empty(t, SelectTop(nil, 4))
	assert.Empty(t, SelectTop([]domain.Movie{}, 4))

	// Records missing the title are malformed and dropped.
	malformed := []domain.Movie{{Rating: 9.9}, {Rating: 8.1}}
	assert.Empty(t, SelectTop(malformed, 4))
}

func TestSelectTopDefaultN(t *testing.T) {
	movies := []domain.Movie{
		{Title: "A", Rating: 1},
		{Title: "B", Rating: 2},
		{Title: "C", Rating: 3},
		{Title: "D", Rating: 4},
		{Title: "E", Rating: 5},
	}

	got := SelectTop(movies, 0)

	assert.Len(t, got, DefaultTopN)
}
