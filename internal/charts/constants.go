package charts

const (
	// ChartHeightRatio determines scatter height as width/ChartHeightRatio.
	// Terminal cells are roughly twice as tall as wide, so 4 keeps the
	// projection close to square on screen.
	ChartHeightRatio = 4

	// MinChartHeight is the floor for scatter chart height.
	MinChartHeight = 10

	// MaxChartHeight caps scatter height on very wide terminals.
	MaxChartHeight = 30
)
