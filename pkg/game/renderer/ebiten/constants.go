package ebiten

import "image/color"

// Color palette for the game
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Outside the map
	colorRoadEnd         = color.RGBA{255, 220, 100, 255} // Unreached road end
	colorRoadEndReached  = color.RGBA{100, 255, 150, 255} // Reached road end
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorHighlight       = color.RGBA{100, 60, 160, 255}  // Selected menu item
	colorProgress        = color.RGBA{100, 255, 150, 255}
)

const (
	baseFontSize  = 16.0
	minUIFontSize = 10.0

	// Design height the UI font size is scaled against
	designHeight = 720.0

	// Menu layout
	menuCornerRadius = 12
	menuBorderWidth  = 2
	menuPadding      = 24

	// Analog stick threshold before a direction counts as held
	stickDeadZone = 0.5

	musicVolume = 0.3
)
