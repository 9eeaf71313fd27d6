package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

// AxesMode renders one strip chart per L*a*b* axis so the spread of
// each coordinate can be read independently.
type AxesMode struct{}

func (AxesMode) Name() string {
	return "axes"
}

func (AxesMode) HandleInteractiveToggle(m *DashModel) tea.Cmd {
	return m.toggleLegendFocus()
}

func (AxesMode) HandleLegendKey(m *DashModel, msg tea.KeyMsg) tea.Cmd {
	return m.legendNavigate(msg)
}

func (AxesMode) RenderStatusParams(m *DashModel) string {
	return ""
}

func (AxesMode) RenderResultsContent(m *DashModel) string {
	return renderChartWithLegend(m, m.chartContent)
}

func (AxesMode) RenderResultsStatusBar(m *DashModel) string {
	return renderGroupCounts(m)
}

func (AxesMode) OnSwitchTo(m *DashModel) {
	*m = m.renderAxesCharts()
}
