package parameter

// Menu layout
const (
	// MenuTopPadding is the number of rows above the heading
	MenuTopPadding = 3

	// MenuHeadingGap is the number of empty rows under the heading
	MenuHeadingGap = 2

	// MenuRowGap is the number of empty rows between components
	MenuRowGap = 1

	// WidgetWidth is the fixed width of buttons and labels in cells
	WidgetWidth = 18

	// WidgetGap is the horizontal gap inside a horizontal group
	WidgetGap = 2
)

// Symbols
const (
	PaddleChar = '█'
	BallChar   = '●'
	WallChar   = '▀'
	SensorChar = '░' // Debug only

	NotSetLabel = "[Not Set]"
	AwaitLabel  = "[Press a key]"
)
