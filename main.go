package main

import (
	"github.com/alecthomas/kong"

	"github.com/akjorns/color-viewer-app/internal/commands"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("color-viewer"),
		kong.Description("Terminal dashboard for tabular CIE L*a*b* color datasets."),
	)
	// Call the Run() method of the selected parsed command.
	err := ctx.Run(&commands.Context{Sheet: cli.Sheet})
	ctx.FatalIfErrorf(err)
}
