package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// executeLoad reads the source off the Update loop. force clears the
// cache first so an unchanged file is still re-parsed.
func (m DashModel) executeLoad(force bool) tea.Cmd {
	loader := m.loader
	source := m.source
	return func() tea.Msg {
		if force {
			if c, ok := loader.(interface{ Clear() }); ok {
				c.Clear()
			}
		}
		start := time.Now()
		ds, err := loader.Load(source)
		return datasetResultMsg{
			ds:       ds,
			err:      err,
			duration: time.Since(start),
		}
	}
}

func (m DashModel) handleDatasetResult(msg datasetResultMsg) (tea.Model, tea.Cmd) {
	m.loadDuration = msg.duration
	m.err = msg.err

	if msg.err != nil {
		// No partial dataset: render the error state over nothing.
		m.ds = nil
		m.state = StateError
		return m, nil
	}

	m.ds = msg.ds
	m.state = StateResults
	m = m.pruneHidden()
	m = m.createLegendTable()
	m = m.createRecordTable()
	m.currentMode().OnSwitchTo(&m)
	return m, nil
}
