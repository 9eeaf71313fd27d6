package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TableMode shows every visible record in a filterable table.
type TableMode struct{}

func (TableMode) Name() string {
	return "records"
}

func (TableMode) HandleInteractiveToggle(m *DashModel) tea.Cmd {
	if m.ds == nil || m.ds.Len() == 0 {
		return nil
	}

	m.legendFocused = !m.legendFocused
	if m.legendFocused {
		m.focusedPane = PaneLegend
		m.recordTable = m.recordTable.Focused(true)
	} else {
		m.focusedPane = PaneMain
		m.recordTable = m.recordTable.Focused(false)
	}
	return nil
}

func (TableMode) HandleLegendKey(m *DashModel, msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	switch key {
	case "q":
		return tea.Quit
	case "i", "esc":
		m.legendFocused = false
		m.focusedPane = PaneMain
		m.recordTable = m.recordTable.Focused(false)
		return nil
	case "/":
		return m.beginFilter()
	}

	var tableCmd tea.Cmd
	switch key {
	case "j":
		m.recordTable, tableCmd = m.recordTable.Update(tea.KeyMsg{Type: tea.KeyDown})
	case "k":
		m.recordTable, tableCmd = m.recordTable.Update(tea.KeyMsg{Type: tea.KeyUp})
	case "h":
		m.recordTable, tableCmd = m.recordTable.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	case "l":
		m.recordTable, tableCmd = m.recordTable.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	default:
		m.recordTable, tableCmd = m.recordTable.Update(msg)
	}
	return tableCmd
}

func (TableMode) RenderStatusParams(m *DashModel) string {
	if filter := m.filterInput.Value(); filter != "" {
		return "   Filter: " + filter
	}
	return ""
}

func (TableMode) RenderResultsContent(m *DashModel) string {
	contentStyle := lipgloss.NewStyle().Padding(1, 2)

	view := m.recordTable.View()
	if m.filtering {
		view = "Filter: " + m.filterInput.View() + "\n\n" + view
	}

	return contentStyle.Render(view)
}

func (TableMode) RenderResultsStatusBar(m *DashModel) string {
	return m.highlightedRecordDetail()
}

func (TableMode) OnSwitchTo(m *DashModel) {
	*m = m.createRecordTable()
}
