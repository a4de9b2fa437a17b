package render

import "github.com/gdamore/tcell/v2"

// Display is the drawing surface consumed by Renderer, tcell.Screen satisfies it
type Display interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
	HideCursor()
	Size() (int, int)
}
