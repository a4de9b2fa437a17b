package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for sprites and text
var (
	RgbCannon   = tcell.NewRGBColor(255, 255, 255) // White
	RgbRocket   = tcell.NewRGBColor(255, 200, 0)   // Amber
	RgbAlien    = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbStatus   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbReload   = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbLanded   = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbDefeated = tcell.NewRGBColor(0, 200, 200)   // Vibrant Cyan
	RgbTitle    = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
)

// Styles derived from the palette
var (
	StyleCannon   = tcell.StyleDefault.Foreground(RgbCannon).Bold(true)
	StyleRocket   = tcell.StyleDefault.Foreground(RgbRocket)
	StyleAlien    = tcell.StyleDefault.Foreground(RgbAlien)
	StyleStatus   = tcell.StyleDefault.Foreground(RgbStatus)
	StyleReload   = tcell.StyleDefault.Foreground(RgbReload)
	StyleLanded   = tcell.StyleDefault.Foreground(RgbLanded)
	StyleDefeated = tcell.StyleDefault.Foreground(RgbDefeated)
	StyleTitle    = tcell.StyleDefault.Foreground(RgbTitle).Bold(true)
	StyleVictory  = tcell.StyleDefault.Foreground(RgbAlien).Bold(true)
	StyleDefeat   = tcell.StyleDefault.Foreground(RgbLanded).Bold(true)
)
