package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode defines the interface for view mode implementations. Each mode
// (Scatter, Axes, Table, Groups) handles mode-specific interactive
// behavior and rendering.
type Mode interface {
	// Name returns the display name of the mode (e.g., "scatter")
	Name() string

	// HandleInteractiveToggle handles the 'i' key press to toggle interactive mode
	HandleInteractiveToggle(m *DashModel) tea.Cmd

	// HandleLegendKey handles navigation keys when in interactive/legend mode
	HandleLegendKey(m *DashModel, msg tea.KeyMsg) tea.Cmd

	// RenderStatusParams returns the mode-specific parameters for the status bar
	RenderStatusParams(m *DashModel) string

	// RenderResultsContent renders the main results content for this mode
	RenderResultsContent(m *DashModel) string

	// RenderResultsStatusBar returns additional status bar content for results
	RenderResultsStatusBar(m *DashModel) string

	// OnSwitchTo is called when switching to this mode or when the data changes
	OnSwitchTo(m *DashModel)
}

// Mode registry - maps ViewMode to Mode implementations
var modes = map[ViewMode]Mode{
	ModeScatter: ScatterMode{},
	ModeAxes:    AxesMode{},
	ModeTable:   TableMode{},
	ModeGroups:  GroupsMode{},
}

// currentMode returns the Mode implementation for the current mode
func (m DashModel) currentMode() Mode {
	return modes[m.mode]
}
