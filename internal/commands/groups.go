package commands

import (
	"fmt"

	"github.com/akjorns/color-viewer-app/internal/dataset"
)

type GroupsCmd struct {
	Source string `arg:"" name:"source" help:"Path to the dataset (.csv or .xlsx)." required:"true"`
}

// Run prints the group labels in display order with their record counts.
func (g *GroupsCmd) Run(ctx *Context) error {
	ds, err := dataset.Load(g.Source, ctx.Sheet)
	if err != nil {
		return err
	}

	for _, group := range ds.Groups {
		fmt.Printf("%s\t%d\n", group.Label, len(group.Records))
	}
	return nil
}
