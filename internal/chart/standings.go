package chart

import (
	"bytes"
	"errors"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/omarshaarawi/playoffpool/internal/models"
)

var ErrNoStandings = errors.New("no standings to chart")

const (
	barWidth   = 48
	barSpacing = 24
	minWidth   = 640
	height     = 420
)

var (
	leaderColor = drawing.ColorFromHex("d4a017")
	barColor    = drawing.ColorFromHex("2f6f4f")
)

// StandingsPNG renders team totals as a bar chart in standings order.
// Teams sharing the top rank are drawn in the leader color.
func StandingsPNG(standings []models.TeamSummary) ([]byte, error) {
	if len(standings) == 0 {
		return nil, ErrNoStandings
	}

	bars := make([]chart.Value, len(standings))
	lo, hi := 0.0, 0.0
	for i, s := range standings {
		color := barColor
		if s.Rank == 1 {
			color = leaderColor
		}
		bars[i] = chart.Value{
			Label: s.Team,
			Value: s.Total,
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		}
		lo = math.Min(lo, s.Total)
		hi = math.Max(hi, s.Total)
	}
	if hi == lo {
		hi = lo + 1
	}

	width := max(minWidth, len(bars)*(barWidth+barSpacing)+160)

	graph := chart.BarChart{
		Title:      "Playoff Pool Standings",
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		YAxis: chart.YAxis{
			Name:  "Points",
			Range: &chart.ContinuousRange{Min: lo, Max: hi * 1.1},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
