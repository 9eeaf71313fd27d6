package commands

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m DashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateResults {
			m.currentMode().OnSwitchTo(&m)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case datasetResultMsg:
		return m.handleDatasetResult(msg)

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m DashModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Handle shortcuts overlay - dismiss on any key except quit keys
	if m.showShortcutsOverlay {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		m.showShortcutsOverlay = false
		return m, nil
	}

	// Filter editing routes everything to the text input
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	// Interactive legend/table navigation
	if m.legendFocused {
		cmd := m.currentMode().HandleLegendKey(&m, msg)
		return m, cmd
	}

	if m.state == StateLoading {
		// Only allow quit during loading
		return m, nil
	}

	return m.handleNormalKey(msg)
}

func (m DashModel) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		return m.handleTabKey()
	case "1", "2", "3", "4":
		return m.handleNumberKey(msg.String())
	case "r", "R":
		m.state = StateLoading
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.executeLoad(msg.String() == "R"))
	case "p":
		if m.mode == ModeScatter && m.state == StateResults {
			m.plane = m.plane.next()
			m = m.renderScatterChart()
		}
		return m, nil
	case "i":
		if m.state != StateResults {
			return m, nil
		}
		cmd := m.currentMode().HandleInteractiveToggle(&m)
		return m, cmd
	case "/":
		if m.mode == ModeTable && m.state == StateResults {
			return m.enterFilterMode()
		}
		return m, nil
	case "?":
		m.showShortcutsOverlay = true
		return m, nil
	case "esc":
		return m.handleEscapeKey()
	}

	return m, nil
}

func (m DashModel) handleTabKey() (tea.Model, tea.Cmd) {
	// Cycle through modes: Scatter -> Axes -> Table -> Groups -> Scatter
	nextMode := m.mode + 1
	if nextMode > ModeGroups {
		nextMode = ModeScatter
	}
	return m.switchToMode(nextMode)
}

func (m DashModel) handleNumberKey(key string) (tea.Model, tea.Cmd) {
	modeMap := map[string]ViewMode{
		"1": ModeScatter,
		"2": ModeAxes,
		"3": ModeTable,
		"4": ModeGroups,
	}
	if mode, ok := modeMap[key]; ok {
		return m.switchToMode(mode)
	}
	return m, nil
}

func (m DashModel) switchToMode(newMode ViewMode) (tea.Model, tea.Cmd) {
	if newMode == m.mode {
		return m, nil
	}

	m.mode = newMode
	m.legendFocused = false
	m.focusedPane = PaneMain
	m.legendTable = m.legendTable.Focused(false)
	m.recordTable = m.recordTable.Focused(false)

	m.currentMode().OnSwitchTo(&m)
	return m, nil
}

func (m DashModel) enterFilterMode() (tea.Model, tea.Cmd) {
	cmd := m.beginFilter()
	return m, cmd
}

// beginFilter flips the model into filter editing. Pointer receiver so
// the focused-table path in the records mode shares it.
func (m *DashModel) beginFilter() tea.Cmd {
	m.filtering = true
	m.filterInput.Focus()
	return textinput.Blink
}

func (m DashModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.filtering = false
		m.filterInput.Blur()
		m.recordTable = m.recordTable.WithFilterInput(m.filterInput)
		return m, nil
	default:
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.recordTable = m.recordTable.WithFilterInput(m.filterInput)
		return m, cmd
	}
}

func (m DashModel) handleEscapeKey() (tea.Model, tea.Cmd) {
	m.focusedPane = PaneMain
	m.legendFocused = false
	m.legendTable = m.legendTable.Focused(false)
	m.recordTable = m.recordTable.Focused(false)
	return m, nil
}

// legendNavigate is the shared legend-pane key handling for the chart
// modes: j/k/h/l move, space toggles visibility, enter solos.
func (m *DashModel) legendNavigate(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	switch key {
	case "q":
		return tea.Quit
	case "i", "esc":
		m.legendFocused = false
		m.focusedPane = PaneMain
		m.legendTable = m.legendTable.Focused(false)
		return nil
	case " ":
		m.toggleHighlightedGroup(false)
		return nil
	case "enter":
		m.toggleHighlightedGroup(true)
		return nil
	}

	var tableCmd tea.Cmd
	switch key {
	case "j":
		m.legendTable, tableCmd = m.legendTable.Update(tea.KeyMsg{Type: tea.KeyDown})
	case "k":
		m.legendTable, tableCmd = m.legendTable.Update(tea.KeyMsg{Type: tea.KeyUp})
	case "h":
		m.legendTable, tableCmd = m.legendTable.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	case "l":
		m.legendTable, tableCmd = m.legendTable.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	default:
		m.legendTable, tableCmd = m.legendTable.Update(msg)
	}
	return tableCmd
}

// toggleLegendFocus is the shared 'i' handling for the chart modes.
func (m *DashModel) toggleLegendFocus() tea.Cmd {
	if m.ds == nil || len(m.ds.Groups) == 0 {
		return nil
	}

	m.legendFocused = !m.legendFocused
	if m.legendFocused {
		m.focusedPane = PaneLegend
		m.legendTable = m.legendTable.Focused(true)
	} else {
		m.focusedPane = PaneMain
		m.legendTable = m.legendTable.Focused(false)
	}
	return nil
}
