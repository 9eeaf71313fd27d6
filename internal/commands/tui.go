package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akjorns/color-viewer-app/internal/dataset"
)

// TUICmd is the Kong command for the interactive dashboard.
type TUICmd struct {
	Source string `arg:"" name:"source" help:"Path to the dataset (.csv or .xlsx)." required:"true"`
}

// Run starts the interactive dashboard.
func (t *TUICmd) Run(ctx *Context) error {
	loader := &dataset.Cache{Sheet: ctx.Sheet}

	model := NewDashModel(loader, t.Source)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
