// Package chart renders vote tallies as PNG bar charts.
package chart

import (
	"bytes"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"
)

const (
	chartHeight   = 512
	chartBarWidth = 60
	topPadding    = 40
)

// Vote is one poll option with its tally.
type Vote struct {
	Option string
	Count  int
}

// Renderer renders tally charts. The zero value is ready to use.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces a PNG bar chart of the given votes.
func (r *Renderer) Render(title string, votes []Vote) ([]byte, error) {
	if len(votes) == 0 {
		return nil, fmt.Errorf("render chart: no votes")
	}

	bars := make([]gochart.Value, 0, len(votes))
	maxCount := 1

	for _, v := range votes {
		bars = append(bars, gochart.Value{
			Label: v.Option,
			Value: float64(v.Count),
		})

		if v.Count > maxCount {
			maxCount = v.Count
		}
	}

	graph := gochart.BarChart{
		Title:    title,
		Height:   chartHeight,
		BarWidth: chartBarWidth,
		Background: gochart.Style{
			Padding: gochart.Box{Top: topPadding},
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: float64(maxCount)},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	return buf.Bytes(), nil
}
