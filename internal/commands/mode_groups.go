package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

// GroupsMode renders a horizontal bar per group, sized by record count.
type GroupsMode struct{}

func (GroupsMode) Name() string {
	return "groups"
}

func (GroupsMode) HandleInteractiveToggle(m *DashModel) tea.Cmd {
	return m.toggleLegendFocus()
}

func (GroupsMode) HandleLegendKey(m *DashModel, msg tea.KeyMsg) tea.Cmd {
	return m.legendNavigate(msg)
}

func (GroupsMode) RenderStatusParams(m *DashModel) string {
	return ""
}

func (GroupsMode) RenderResultsContent(m *DashModel) string {
	return renderChartWithLegend(m, m.chartContent)
}

func (GroupsMode) RenderResultsStatusBar(m *DashModel) string {
	return renderGroupCounts(m)
}

func (GroupsMode) OnSwitchTo(m *DashModel) {
	*m = m.renderGroupsChart()
}
