package commands

const (
	// DefaultTerminalWidth is the fallback terminal width when detection fails.
	DefaultTerminalWidth = 80

	// DefaultTerminalHeight is the fallback terminal height when detection fails.
	DefaultTerminalHeight = 24

	// ChartWidthPadding is the horizontal padding subtracted from terminal width for chart rendering.
	ChartWidthPadding = 6

	// LegendMaxRows is the maximum number of visible rows in the legend table.
	LegendMaxRows = 5

	// RecordPageSize is the page size of the records table.
	RecordPageSize = 12

	// SwatchColumnWidth is the width of the color swatch column in tables.
	SwatchColumnWidth = 3
)
