package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/charmbracelet/lipgloss"

	"github.com/akjorns/color-viewer-app/internal/dataset"
)

var axisStyle = lipgloss.NewStyle().Foreground(AxisColor)

var labelStyle = lipgloss.NewStyle().Foreground(LabelColor)

var emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Scatter renders a 2D projection of the record cloud onto the x/y
// coordinate plane, one block marker per record in the record's own
// color. Overlapping records share a cell; the last one drawn wins.
func Scatter(records []dataset.Record, x, y Axis, width int) string {
	if len(records) == 0 {
		return emptyStyle.Render(fmt.Sprintf("no records to plot on %s / %s", x.Label(), y.Label()))
	}

	height := width / ChartHeightRatio
	if height < MinChartHeight {
		height = MinChartHeight
	}
	if height > MaxChartHeight {
		height = MaxChartHeight
	}

	minX, maxX := axisRange(records, x)
	minY, maxY := axisRange(records, y)

	topLabel := fmt.Sprintf("%.1f", maxY)
	bottomLabel := fmt.Sprintf("%.1f", minY)
	gutter := len(topLabel)
	if len(bottomLabel) > gutter {
		gutter = len(bottomLabel)
	}

	plotWidth := width - gutter - 1
	if plotWidth < 10 {
		plotWidth = 10
	}

	grid := make([][]string, height)
	for i := range grid {
		grid[i] = make([]string, plotWidth)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}

	for _, r := range records {
		col := scalePos(x.Value(r), minX, maxX, plotWidth-1)
		row := height - 1 - scalePos(y.Value(r), minY, maxY, height-1)
		grid[row][col] = MarkerStyle(r.Color).Render(string(runes.FullBlock))
	}

	var s strings.Builder
	s.WriteString(labelStyle.Render(y.Label()))
	s.WriteString("\n")
	for i := range grid {
		label := ""
		switch i {
		case 0:
			label = topLabel
		case height - 1:
			label = bottomLabel
		}
		s.WriteString(labelStyle.Render(fmt.Sprintf("%*s", gutter, label)))
		s.WriteString(axisStyle.Render("│"))
		s.WriteString(strings.Join(grid[i], ""))
		s.WriteString("\n")
	}
	s.WriteString(strings.Repeat(" ", gutter))
	s.WriteString(axisStyle.Render("└" + strings.Repeat("─", plotWidth)))
	s.WriteString("\n")
	s.WriteString(strings.Repeat(" ", gutter+1))
	s.WriteString(labelStyle.Render(axisCaption(fmt.Sprintf("%.1f", minX), fmt.Sprintf("%.1f", maxX), x.Label(), plotWidth)))

	return s.String()
}

// axisCaption lays out "min ... title ... max" across the plot width.
func axisCaption(minLabel, maxLabel, title string, width int) string {
	gap := width - len(minLabel) - len(maxLabel) - len(title)
	if gap < 2 {
		return minLabel + " " + title + " " + maxLabel
	}
	left := gap / 2
	return minLabel + strings.Repeat(" ", left) + title + strings.Repeat(" ", gap-left) + maxLabel
}

// scalePos maps v from [lo, hi] onto [0, n]. A degenerate range lands
// everything in the middle.
func scalePos(v, lo, hi float64, n int) int {
	if n <= 0 {
		return 0
	}
	if hi <= lo {
		return n / 2
	}
	pos := int(math.Round((v - lo) / (hi - lo) * float64(n)))
	if pos < 0 {
		pos = 0
	}
	if pos > n {
		pos = n
	}
	return pos
}

func axisRange(records []dataset.Record, a Axis) (float64, float64) {
	lo := math.MaxFloat64
	hi := -math.MaxFloat64
	for _, r := range records {
		v := a.Value(r)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
