package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m DashModel) View() string {
	// Show shortcuts overlay if active
	if m.showShortcutsOverlay {
		height := m.height
		if height <= 0 {
			height = DefaultTerminalHeight
		}
		overlay := renderShortcutsOverlay()
		return lipgloss.Place(
			m.getTerminalWidth(),
			height,
			lipgloss.Center,
			lipgloss.Center,
			overlay,
		)
	}

	var s strings.Builder

	// Status bar
	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")

	// Results area
	s.WriteString(m.renderResults())

	// Results status bar (latency, counts)
	s.WriteString(m.renderResultsStatusBar())
	s.WriteString("\n")

	// Help bar
	s.WriteString(m.renderHelpBar())

	return s.String()
}

func (m DashModel) renderStatusBar() string {
	// Mode indicator
	modeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	scatterStyle := modeStyle
	axesStyle := modeStyle
	tableStyle := modeStyle
	groupsStyle := modeStyle

	activeStyle := modeStyle.Background(lipgloss.Color("63")).Foreground(lipgloss.Color("231"))

	switch m.mode {
	case ModeScatter:
		scatterStyle = activeStyle
	case ModeAxes:
		axesStyle = activeStyle
	case ModeTable:
		tableStyle = activeStyle
	case ModeGroups:
		groupsStyle = activeStyle
	}

	modeText := fmt.Sprintf("  %s | %s | %s | %s",
		scatterStyle.Render(" 1 scatter "),
		axesStyle.Render(" 2 axes "),
		tableStyle.Render(" 3 records "),
		groupsStyle.Render(" 4 groups "))

	sourceText := "   " + filepath.Base(m.source)

	// Get mode-specific parameters
	paramsText := m.currentMode().RenderStatusParams(&m)

	statusStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Width(m.getTerminalWidth()).
		Padding(0, 1)

	return statusStyle.Render(modeText + sourceText + paramsText)
}

func (m DashModel) renderResults() string {
	var content string

	switch m.state {
	case StateLoading:
		content = m.renderLoadingState()
	case StateError:
		content = m.renderErrorState()
	case StateResults:
		content = m.currentMode().RenderResultsContent(&m)
	}

	return content
}

func (m DashModel) renderLoadingState() string {
	loadingStyle := lipgloss.NewStyle().Padding(2, 4)
	return loadingStyle.Render(fmt.Sprintf("%s Loading %s", m.spinner.View(), m.source))
}

func (m DashModel) renderErrorState() string {
	errorStyle := lipgloss.NewStyle().Padding(1, 2)
	return errorStyle.Render(ErrorStyle.Render("Error: ") + m.err.Error() + "\n\nPress r to retry.")
}

func (m DashModel) renderResultsStatusBar() string {
	statusStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		MarginTop(1)

	content := ""
	if m.loadDuration != 0 {
		content = " Loaded in " + formatDuration(m.loadDuration)
	}

	// Add mode-specific status bar content
	content += m.currentMode().RenderResultsStatusBar(&m)

	return statusStyle.Render(content)
}

func (m DashModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Width(m.getTerminalWidth()).
		Padding(0, 1)

	var helpText string
	switch {
	case m.filtering:
		helpText = "enter/esc: done filtering | ctrl+c: quit"
	case m.legendFocused:
		helpText = "j/k: move | space: toggle group | enter: solo | esc: back | q: quit"
	default:
		helpText = "tab/1-4: view | i: legend | r: reload | ?: shortcuts | q: quit"
	}

	return helpStyle.Render(helpText)
}

func renderShortcutsOverlay() string {
	accentColor := lipgloss.Color("205")

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		MarginBottom(1)

	categoryStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("252"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	var content strings.Builder

	content.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n")

	// Global shortcuts
	content.WriteString(categoryStyle.Render("Global"))
	content.WriteString("\n")
	shortcuts := []struct{ key, desc string }{
		{"Tab", "Cycle through views"},
		{"1-4", "Switch to view directly"},
		{"r", "Reload source if changed"},
		{"R", "Force reload"},
		{"q", "Quit"},
		{"Ctrl+C", "Force quit"},
	}
	for _, s := range shortcuts {
		content.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", s.key)), descStyle.Render(s.desc)))
	}

	// Scatter view
	content.WriteString(categoryStyle.Render("Scatter View"))
	content.WriteString("\n")
	scatterShortcuts := []struct{ key, desc string }{
		{"p", "Cycle projection plane (a*/b*, a*/L*, b*/L*)"},
	}
	for _, s := range scatterShortcuts {
		content.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", s.key)), descStyle.Render(s.desc)))
	}

	// Group legend
	content.WriteString(categoryStyle.Render("Group Legend"))
	content.WriteString("\n")
	legendShortcuts := []struct{ key, desc string }{
		{"i", "Focus/unfocus the legend"},
		{"j/k", "Navigate up/down"},
		{"Space", "Toggle group visibility"},
		{"Enter", "Solo the selected group"},
		{"Esc", "Back to the charts"},
	}
	for _, s := range legendShortcuts {
		content.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", s.key)), descStyle.Render(s.desc)))
	}

	// Records view
	content.WriteString(categoryStyle.Render("Records View"))
	content.WriteString("\n")
	tableShortcuts := []struct{ key, desc string }{
		{"i", "Focus/unfocus the table"},
		{"/", "Filter records"},
	}
	for _, s := range tableShortcuts {
		content.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", s.key)), descStyle.Render(s.desc)))
	}

	content.WriteString("\n")
	content.WriteString(descStyle.Render("Press any key to close"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(1, 2)

	return boxStyle.Render(content.String())
}
