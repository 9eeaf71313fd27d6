package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	teatable "github.com/evertras/bubble-table/table"
	"golang.org/x/term"

	"github.com/akjorns/color-viewer-app/internal/charts"
)

func (m DashModel) renderScatterChart() DashModel {
	x, y := m.plane.Axes()
	m.chartContent = charts.Scatter(m.visibleRecords(), x, y, m.getChartWidth())
	return m
}

func (m DashModel) renderAxesCharts() DashModel {
	width := m.getChartWidth()
	records := m.visibleRecords()

	var s strings.Builder
	for i, axis := range []charts.Axis{charts.AxisL, charts.AxisA, charts.AxisB} {
		if i > 0 {
			s.WriteString("\n\n")
		}
		s.WriteString(charts.Strip(records, axis, width))
	}
	m.chartContent = s.String()
	return m
}

func (m DashModel) renderGroupsChart() DashModel {
	m.chartContent = charts.GroupBars(m.visibleGroups(), m.getChartWidth())
	return m
}

// createLegendTable builds the group legend: swatch, visibility mark,
// label, record count.
func (m DashModel) createLegendTable() DashModel {
	if m.ds == nil || len(m.ds.Groups) == 0 {
		m.legendTable = teatable.New(nil)
		return m
	}

	rows := make([]teatable.Row, 0, len(m.ds.Groups))
	longestLabel := 0

	for _, g := range m.ds.Groups {
		if len(g.Label) > longestLabel {
			longestLabel = len(g.Label)
		}

		swatch := ""
		if len(g.Records) > 0 {
			swatch = charts.MarkerStyle(g.Records[0].Color).Render("█")
		}

		shown := "*"
		if m.hidden[g.Label] {
			shown = ""
		}

		rows = append(rows, teatable.NewRow(teatable.RowData{
			"color": swatch,
			"shown": shown,
			"label": g.Label,
			"count": len(g.Records),
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn("color", "", SwatchColumnWidth),
		teatable.NewColumn("shown", "", SwatchColumnWidth),
		teatable.NewColumn("label", "Group", max(longestLabel, 10)),
		teatable.NewColumn("count", "Count", 6),
	}

	m.legendTable = teatable.
		New(columns).
		WithRows(rows).
		WithPageSize(LegendMaxRows).
		Focused(m.legendFocused)

	return m
}

// createRecordTable builds the filterable record table from the visible
// groups.
func (m DashModel) createRecordTable() DashModel {
	records := m.visibleRecords()

	rows := make([]teatable.Row, 0, len(records))
	longestID := len("ID")
	longestMarking := len("Marking")
	longestGroup := len("Group")

	for _, r := range records {
		if len(r.ID) > longestID {
			longestID = len(r.ID)
		}
		if len(r.Marking) > longestMarking {
			longestMarking = len(r.Marking)
		}
		if len(r.Group) > longestGroup {
			longestGroup = len(r.Group)
		}

		rows = append(rows, teatable.NewRow(teatable.RowData{
			"color":   charts.MarkerStyle(r.Color).Render("█"),
			"id":      r.ID,
			"marking": r.Marking,
			"group":   r.Group,
			"l":       fmt.Sprintf("%.2f", r.L),
			"a":       fmt.Sprintf("%.2f", r.A),
			"b":       fmt.Sprintf("%.2f", r.B),
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn("color", "", SwatchColumnWidth),
		teatable.NewColumn("id", "ID", min(longestID+1, 30)).WithFiltered(true),
		teatable.NewColumn("marking", "Marking", min(longestMarking+1, 20)).WithFiltered(true),
		teatable.NewColumn("group", "Group", min(longestGroup+1, 20)).WithFiltered(true),
		teatable.NewColumn("l", "L*", 8),
		teatable.NewColumn("a", "a*", 8),
		teatable.NewColumn("b", "b*", 8),
	}

	m.recordTable = teatable.
		New(columns).
		WithRows(rows).
		Filtered(true).
		WithFooterVisibility(true).
		WithPageSize(RecordPageSize).
		Focused(m.legendFocused).
		WithBaseStyle(lipgloss.NewStyle())

	return m
}

// highlightedRecordDetail formats the highlighted table row the way the
// chart tooltips describe a record.
func (m DashModel) highlightedRecordDetail() string {
	row := m.recordTable.HighlightedRow()
	if row.Data == nil {
		return ""
	}

	id, _ := row.Data["id"].(string)
	marking, _ := row.Data["marking"].(string)
	group, _ := row.Data["group"].(string)
	l, _ := row.Data["l"].(string)
	a, _ := row.Data["a"].(string)
	b, _ := row.Data["b"].(string)

	palette := strings.TrimPrefix(group, "palette ")
	return fmt.Sprintf(" | ID: %s  Marking: %s  palette: %s  L*: %s  a*: %s  b*: %s",
		id, marking, palette, l, a, b)
}

func (m DashModel) getChartWidth() int {
	width := m.width - ChartWidthPadding
	if width <= 0 {
		termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil && termWidth > 0 {
			width = termWidth - ChartWidthPadding
		} else {
			width = DefaultTerminalWidth - ChartWidthPadding
		}
	}
	return width
}

func (m DashModel) getTerminalWidth() int {
	if m.width > 0 {
		return m.width
	}
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && termWidth > 0 {
		return termWidth
	}
	return DefaultTerminalWidth
}

// toggleHighlightedGroup flips visibility of the legend's highlighted
// group. solo hides every other group instead, or restores all groups
// when the highlighted one is already the only one visible.
func (m *DashModel) toggleHighlightedGroup(solo bool) {
	row := m.legendTable.HighlightedRow()
	if row.Data == nil {
		return
	}
	label, ok := row.Data["label"].(string)
	if !ok || m.ds == nil {
		return
	}

	if solo {
		othersVisible := false
		for _, l := range m.ds.Labels {
			if l != label && !m.hidden[l] {
				othersVisible = true
				break
			}
		}
		for _, l := range m.ds.Labels {
			m.hidden[l] = othersVisible && l != label
		}
	} else {
		m.hidden[label] = !m.hidden[label]
	}

	idx := m.legendTable.GetHighlightedRowIndex()
	*m = m.createLegendTable()
	m.legendTable = m.legendTable.WithHighlightedRow(idx).Focused(true)
	*m = m.createRecordTable()
	m.currentMode().OnSwitchTo(m)
}
