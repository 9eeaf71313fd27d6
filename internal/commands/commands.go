package commands

// Context carries global flags shared by all subcommands.
type Context struct {
	Sheet string
}

// CLI is the top-level command tree.
type CLI struct {
	Sheet string `help:"Worksheet to read when the source is an Excel workbook. Defaults to the first sheet." env:"COLOR_VIEWER_SHEET"`

	Tui    TUICmd    `cmd:"" default:"withargs" help:"Interactive dashboard."`
	Show   ShowCmd   `cmd:"" help:"Render a dataset once: group chart, json, or yaml."`
	Table  TableCmd  `cmd:"" help:"Browse records in a filterable table."`
	Groups GroupsCmd `cmd:"" help:"List group labels in display order."`
	Export ExportCmd `cmd:"" help:"Export the normalized dataset to an Excel workbook."`
}
