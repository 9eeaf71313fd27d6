package charts

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"

	"github.com/akjorns/color-viewer-app/internal/dataset"
)

// GroupBars renders a horizontal bar chart of records-per-group, in
// group display order.
func GroupBars(groups []dataset.Group, width int) string {
	if len(groups) == 0 {
		return emptyStyle.Render("no groups to chart")
	}

	barData := make([]barchart.BarData, 0, len(groups))
	for i, g := range groups {
		barData = append(barData, barchart.BarData{
			Label: fmt.Sprintf("%s (%d)", g.Label, len(g.Records)),
			Values: []barchart.BarValue{
				{Name: g.Label, Value: float64(len(g.Records)), Style: SeriesStyle(i)},
			},
		})
	}

	bc := barchart.New(width, len(barData)*2, barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View()
}
