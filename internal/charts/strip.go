package charts

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"

	"github.com/akjorns/color-viewer-app/internal/dataset"
)

// Strip renders records along a single coordinate: the one-dimensional
// axis view. Markers keep their record colors; overlapping values share
// a slot.
func Strip(records []dataset.Record, axis Axis, width int) string {
	if len(records) == 0 {
		return emptyStyle.Render("no records to plot on " + axis.Label())
	}

	plotWidth := width - 2
	if plotWidth < 10 {
		plotWidth = 10
	}

	lo, hi := axisRange(records, axis)

	slots := make([]string, plotWidth)
	for i := range slots {
		slots[i] = " "
	}
	for _, r := range records {
		slots[scalePos(axis.Value(r), lo, hi, plotWidth-1)] = MarkerStyle(r.Color).Render(string(runes.FullBlock))
	}

	var s strings.Builder
	s.WriteString(" ")
	s.WriteString(strings.Join(slots, ""))
	s.WriteString("\n ")
	s.WriteString(axisStyle.Render("├" + strings.Repeat("─", plotWidth-2) + "┤"))
	s.WriteString("\n ")
	s.WriteString(labelStyle.Render(axisCaption(fmt.Sprintf("%.1f", lo), fmt.Sprintf("%.1f", hi), axis.Label(), plotWidth)))

	return s.String()
}
