package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

func TestRenderProducesPNG(t *testing.T) {
	r := NewRenderer()

	img, err := r.Render("Movie Night Results", []Vote{
		{Option: "Night Train", Count: 3},
		{Option: "Quiet Harbor", Count: 1},
		{Option: "No Takers", Count: 0},
	})
	require.NoError(t, err)

	require.Greater(t, len(img), len(pngMagic))
	assert.Equal(t, pngMagic, img[:len(pngMagic)])
}

func TestRenderNoVotes(t *testing.T) {
	r := NewRenderer()

	_, err := r.Render("Movie Night Results", nil)

	assert.Error(t, err)
}

func TestRenderSingleOption(t *testing.T) {
	r := NewRenderer()

	img, err := r.Render("Movie Night Results", []Vote{{Option: "Night Train", Count: 5}})
	require.NoError(t, err)

	assert.Equal(t, pngMagic, img[:len(pngMagic)])
}
