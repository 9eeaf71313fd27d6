package tables

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	teatable "github.com/evertras/bubble-table/table"

	"github.com/akjorns/color-viewer-app/internal/charts"
	"github.com/akjorns/color-viewer-app/internal/dataset"
)

type Model struct {
	table           teatable.Model
	filterTextInput textinput.Model
}

// Browse builds a standalone filterable table over the records.
func Browse(records []dataset.Record) Model {
	return recordModel(records)
}

func recordModel(records []dataset.Record) Model {
	longestID := len("ID")
	longestMarking := len("Marking")
	longestGroup := len("Group")
	rows := make([]teatable.Row, 0, len(records))
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
		teatable.NewColumn("color", "", 3),
		teatable.NewColumn("id", "ID", max(longestID+1, 6)).WithFiltered(true),
		teatable.NewColumn("marking", "Marking", max(longestMarking+1, 8)).WithFiltered(true),
		teatable.NewColumn("group", "Group", max(longestGroup+1, 6)).WithFiltered(true),
		teatable.NewColumn("l", "L*", 8),
		teatable.NewColumn("a", "a*", 8),
		teatable.NewColumn("b", "b*", 8),
	}

	return Model{
		table: teatable.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(10).
			WithBaseStyle(lipgloss.NewStyle()).
			WithRows(rows),
		filterTextInput: textinput.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// global
		if msg.String() == "ctrl+c" {
			cmds = append(cmds, tea.Quit)

			return m, tea.Batch(cmds...)
		}
		// event to filter
		if m.filterTextInput.Focused() {
			if msg.String() == "enter" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, tea.Batch(cmds...)
		}

		// others component
		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			cmds = append(cmds, tea.Quit)
			return m, tea.Batch(cmds...)
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString("\nPress / + letters to start filtering, and q or ctrl+c to quit")

	return body.String()
}
