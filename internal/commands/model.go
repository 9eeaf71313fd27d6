package commands

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"

	"github.com/akjorns/color-viewer-app/internal/dataset"
)

// DashModel is the main Bubble Tea model for the interactive dashboard.
type DashModel struct {
	loader dataset.Loader
	source string

	// Mode
	mode ViewMode

	// Load state
	state        TUIState
	err          error
	loadDuration time.Duration

	// Data
	ds     *dataset.Dataset
	hidden map[string]bool // group label -> hidden from all views

	// Scatter projection
	plane Plane

	// Rendered content
	chartContent string
	legendTable  teatable.Model
	recordTable  teatable.Model
	filterInput  textinput.Model

	// UI state
	width                int
	height               int
	focusedPane          FocusedPane
	legendFocused        bool
	filtering            bool
	showShortcutsOverlay bool
	spinner              spinner.Model
}

// NewDashModel creates a new dashboard model for the given source file.
func NewDashModel(loader dataset.Loader, source string) DashModel {
	ti := textinput.New()
	ti.Placeholder = "Filter records..."
	ti.Width = 40

	return DashModel{
		loader:      loader,
		source:      source,
		mode:        ModeScatter,
		state:       StateLoading,
		hidden:      make(map[string]bool),
		plane:       PlaneAB,
		filterInput: ti,
		focusedPane: PaneMain,
		spinner:     NewLoadingSpinner(),
	}
}

func (m DashModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.executeLoad(false),
	)
}

// visibleGroups returns the dataset's groups minus the hidden ones, in
// display order.
func (m DashModel) visibleGroups() []dataset.Group {
	if m.ds == nil {
		return nil
	}
	groups := make([]dataset.Group, 0, len(m.ds.Groups))
	for _, g := range m.ds.Groups {
		if !m.hidden[g.Label] {
			groups = append(groups, g)
		}
	}
	return groups
}

// visibleRecords flattens the visible groups.
func (m DashModel) visibleRecords() []dataset.Record {
	var records []dataset.Record
	for _, g := range m.visibleGroups() {
		records = append(records, g.Records...)
	}
	return records
}

func (m DashModel) hiddenCount() int {
	n := 0
	for _, hidden := range m.hidden {
		if hidden {
			n++
		}
	}
	return n
}

// pruneHidden drops visibility state for labels that no longer exist
// after a reload.
func (m DashModel) pruneHidden() DashModel {
	if m.ds == nil {
		return m
	}
	known := make(map[string]bool, len(m.ds.Labels))
	for _, label := range m.ds.Labels {
		known[label] = true
	}
	for label := range m.hidden {
		if !known[label] {
			delete(m.hidden, label)
		}
	}
	return m
}

// formatDuration formats a duration with appropriate precision.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
