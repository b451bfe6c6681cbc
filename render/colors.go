package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbPaddle     = tcell.NewRGBColor(255, 255, 255) // White
	RgbBall       = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbSensor     = tcell.NewRGBColor(60, 40, 0)     // Very dark orange, debug only
	RgbScore      = tcell.NewRGBColor(0, 255, 255)   // Cyan

	RgbMenuTitle    = tcell.NewRGBColor(255, 255, 255)
	RgbMenuText     = tcell.NewRGBColor(200, 200, 200)
	RgbMenuBox      = tcell.NewRGBColor(70, 70, 70)
	RgbMenuFocus    = tcell.NewRGBColor(120, 120, 120)
	RgbMenuSelected = tcell.NewRGBColor(0, 200, 0)

	RgbStatusBar = tcell.NewRGBColor(180, 180, 180)
)

func baseStyle() tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground)
}
