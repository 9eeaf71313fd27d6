package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akjorns/color-viewer-app/internal/dataset"
	"github.com/akjorns/color-viewer-app/internal/tables"
)

type TableCmd struct {
	Source string `arg:"" name:"source" help:"Path to the dataset (.csv or .xlsx)." required:"true"`
}

// Run opens a standalone filterable table over the records.
func (t *TableCmd) Run(ctx *Context) error {
	ds, err := dataset.Load(t.Source, ctx.Sheet)
	if err != nil {
		return err
	}

	model := tables.Browse(ds.Records())
	p := tea.NewProgram(model)

	_, err = p.Run()
	return err
}
