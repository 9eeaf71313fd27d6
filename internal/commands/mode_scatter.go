package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ScatterMode projects the dataset onto a pair of axes and renders the
// points as a colored scatter chart with the group legend alongside.
type ScatterMode struct{}

func (ScatterMode) Name() string {
	return "scatter"
}

func (ScatterMode) HandleInteractiveToggle(m *DashModel) tea.Cmd {
	return m.toggleLegendFocus()
}

func (ScatterMode) HandleLegendKey(m *DashModel, msg tea.KeyMsg) tea.Cmd {
	return m.legendNavigate(msg)
}

func (ScatterMode) RenderStatusParams(m *DashModel) string {
	return "   Plane: " + m.plane.String()
}

func (ScatterMode) RenderResultsContent(m *DashModel) string {
	return renderChartWithLegend(m, m.chartContent)
}

func (ScatterMode) RenderResultsStatusBar(m *DashModel) string {
	return renderGroupCounts(m)
}

func (ScatterMode) OnSwitchTo(m *DashModel) {
	*m = m.renderScatterChart()
}

// renderChartWithLegend lays out a chart next to the bordered group
// legend, shared by the chart modes.
func renderChartWithLegend(m *DashModel, chart string) string {
	contentStyle := lipgloss.NewStyle().Padding(1, 2)

	legendBorder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		MarginTop(1)
	if m.legendFocused {
		legendBorder = legendBorder.BorderForeground(lipgloss.Color("63"))
	}

	legend := legendBorder.Render(m.legendTable.View())

	return contentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, chart, legend))
}

// renderGroupCounts summarizes record and group visibility for the
// results status bar.
func renderGroupCounts(m *DashModel) string {
	if m.ds == nil {
		return ""
	}
	s := fmt.Sprintf(" | %d records in %d groups", m.ds.Len(), len(m.ds.Groups))
	if n := m.hiddenCount(); n > 0 {
		s += " " + WarningStyle.Render(fmt.Sprintf("(%d hidden)", n))
	}
	return s
}
